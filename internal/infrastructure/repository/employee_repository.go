package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/fleetdesk/fleetdesk-api/internal/domain/entity"
	domainRepo "github.com/fleetdesk/fleetdesk-api/internal/domain/repository"
	"github.com/fleetdesk/fleetdesk-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) domainRepo.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	return translateDuplicate(r.db.WithContext(ctx).Create(employee).Error,
		"Employee with this Iqama ID already exists")
}

func (r *employeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	var employee entity.Employee
	err := r.db.WithContext(ctx).First(&employee, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &employee, err
}

func (r *employeeRepository) GetByIqamaID(ctx context.Context, iqamaID string) (*entity.Employee, error) {
	var employee entity.Employee
	err := r.db.WithContext(ctx).First(&employee, "iqama_id = ?", iqamaID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &employee, err
}

func (r *employeeRepository) Update(ctx context.Context, employee *entity.Employee) error {
	return translateDuplicate(r.db.WithContext(ctx).Save(employee).Error,
		"Employee with this Iqama ID already exists")
}

func (r *employeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Employee{}, "id = ?", id).Error
}

func (r *employeeRepository) base(ctx context.Context, filter *domainRepo.EmployeeFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&entity.Employee{})
	if filter.IncludeDeleted {
		query = query.Unscoped()
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	return query
}

// List searches name/iqama/phone case-insensitively. When the plain pass
// matches nothing, a looser pass compares with spaces stripped on both sides.
func (r *employeeRepository) List(ctx context.Context, filter *domainRepo.EmployeeFilter, params *pagination.Params) ([]entity.Employee, int64, error) {
	query := r.base(ctx, filter)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR iqama_id ILIKE ? OR phone ILIKE ?",
			pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if total == 0 && filter.Search != "" {
		stripped := "%" + strings.ReplaceAll(filter.Search, " ", "") + "%"
		query = r.base(ctx, filter).Where(
			"REPLACE(name, ' ', '') ILIKE ? OR iqama_id ILIKE ? OR REPLACE(COALESCE(phone, ''), ' ', '') ILIKE ?",
			stripped, stripped, stripped)
		if err := query.Count(&total).Error; err != nil {
			return nil, 0, err
		}
	}

	params.Validate()
	var employees []entity.Employee
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&employees).Error

	return employees, total, err
}
