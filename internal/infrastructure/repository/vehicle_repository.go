package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fleetdesk/fleetdesk-api/internal/domain/entity"
	domainRepo "github.com/fleetdesk/fleetdesk-api/internal/domain/repository"
	"github.com/fleetdesk/fleetdesk-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *gorm.DB) domainRepo.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	return translateDuplicate(r.db.WithContext(ctx).Create(vehicle).Error,
		"Vehicle with this number already exists")
}

// CreateWithInitialPayment writes the vehicle and its opening payment in one
// transaction so a crash cannot leave the vehicle without its receivable.
func (r *vehicleRepository) CreateWithInitialPayment(ctx context.Context, vehicle *entity.Vehicle, payment *entity.Payment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(vehicle).Error; err != nil {
			return err
		}
		payment.VehicleID = vehicle.ID
		return tx.Create(payment).Error
	})
	return translateDuplicate(err, "Vehicle with this number already exists")
}

func (r *vehicleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	err := r.db.WithContext(ctx).Preload("Employee").First(&vehicle, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &vehicle, err
}

func (r *vehicleRepository) GetByNumber(ctx context.Context, number string) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	err := r.db.WithContext(ctx).First(&vehicle, "number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &vehicle, err
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	return r.db.WithContext(ctx).Save(vehicle).Error
}

func (r *vehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Vehicle{}, "id = ?", id).Error
}

func (r *vehicleRepository) base(ctx context.Context, filter *domainRepo.VehicleFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&entity.Vehicle{})
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	return query
}

// List searches number/name/serial case-insensitively. When the plain pass
// matches nothing, a looser pass compares with spaces stripped on both sides,
// so "ABC 123" still finds a vehicle registered as "ABC123".
func (r *vehicleRepository) List(ctx context.Context, filter *domainRepo.VehicleFilter, params *pagination.Params) ([]entity.Vehicle, int64, error) {
	query := r.base(ctx, filter)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("number ILIKE ? OR name ILIKE ? OR serial_number ILIKE ?",
			pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if total == 0 && filter.Search != "" {
		stripped := "%" + strings.ReplaceAll(filter.Search, " ", "") + "%"
		query = r.base(ctx, filter).Where(
			"REPLACE(number, ' ', '') ILIKE ? OR REPLACE(name, ' ', '') ILIKE ? OR REPLACE(COALESCE(serial_number, ''), ' ', '') ILIKE ?",
			stripped, stripped, stripped)
		if err := query.Count(&total).Error; err != nil {
			return nil, 0, err
		}
	}

	params.Validate()
	var vehicles []entity.Vehicle
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Employee").
		Order("created_at DESC").
		Find(&vehicles).Error

	return vehicles, total, err
}

func (r *vehicleRepository) ExpiringBefore(ctx context.Context, days int) ([]entity.Vehicle, error) {
	var vehicles []entity.Vehicle
	now := time.Now()
	cutoff := now.AddDate(0, 0, days)
	err := r.db.WithContext(ctx).
		Where("contract_expiry IS NOT NULL AND contract_expiry BETWEEN ? AND ?", now, cutoff).
		Order("contract_expiry ASC").
		Find(&vehicles).Error
	return vehicles, err
}
