package repository

import (
	"context"
	"errors"

	"github.com/fleetdesk/fleetdesk-api/internal/domain/entity"
	domainRepo "github.com/fleetdesk/fleetdesk-api/internal/domain/repository"
	"github.com/fleetdesk/fleetdesk-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	return r.db.WithContext(ctx).Create(bill).Error
}

func (r *billRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).Preload("Employee").First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	bill.FillDerived()
	return &bill, nil
}

func (r *billRepository) Update(ctx context.Context, bill *entity.Bill) error {
	return r.db.WithContext(ctx).Save(bill).Error
}

func (r *billRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Bill{}, "id = ?", id).Error
}

func (r *billRepository) base(ctx context.Context, filter *domainRepo.BillFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&entity.Bill{})
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", *filter.To)
	}
	return query
}

func (r *billRepository) List(ctx context.Context, filter *domainRepo.BillFilter, params *pagination.Params) ([]entity.Bill, int64, error) {
	query := r.base(ctx, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	var bills []entity.Bill
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Employee").
		Order("date DESC").
		Find(&bills).Error
	if err != nil {
		return nil, 0, err
	}

	for i := range bills {
		bills[i].FillDerived()
	}

	return bills, total, nil
}

func (r *billRepository) ListAll(ctx context.Context, filter *domainRepo.BillFilter) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := r.base(ctx, filter).
		Preload("Employee").
		Order("date DESC").
		Find(&bills).Error
	if err != nil {
		return nil, err
	}

	for i := range bills {
		bills[i].FillDerived()
	}

	return bills, nil
}
