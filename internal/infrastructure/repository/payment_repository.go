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

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) CreateWithInitialInstallment(ctx context.Context, payment *entity.Payment, installment *entity.Installment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		installment.PaymentID = payment.ID
		return tx.Create(installment).Error
	})
}

func (r *paymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var payment entity.Payment
	err := r.db.WithContext(ctx).
		Preload("Vehicle.Employee").
		Preload("Installments").
		First(&payment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	paid, err := r.SumPaid(ctx, payment.ID)
	if err != nil {
		return nil, err
	}
	payment.FillDerived(paid)
	return &payment, nil
}

func (r *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	return r.db.WithContext(ctx).
		Model(&entity.Payment{}).
		Where("id = ?", payment.ID).
		Updates(map[string]interface{}{
			"vehicle_id":   payment.VehicleID,
			"total_amount": payment.TotalAmount,
			"date":         payment.Date,
			"remarks":      payment.Remarks,
		}).Error
}

// DeleteCascade soft-deletes the payment and every installment referencing
// it inside one transaction: both writes land or neither does.
func (r *paymentRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("payment_id = ?", id).Delete(&entity.Installment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Payment{}, "id = ?", id).Error
	})
}

func (r *paymentRepository) base(ctx context.Context, filter *domainRepo.PaymentFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&entity.Payment{})
	if filter.IncludeDeleted {
		query = query.Unscoped()
	}
	if filter.VehicleID != nil {
		query = query.Where("vehicle_id = ?", *filter.VehicleID)
	}
	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", *filter.To)
	}
	return query
}

func (r *paymentRepository) List(ctx context.Context, filter *domainRepo.PaymentFilter, params *pagination.Params) ([]entity.Payment, int64, error) {
	query := r.base(ctx, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	var payments []entity.Payment
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Vehicle.Employee").
		Order("date DESC").
		Find(&payments).Error
	if err != nil {
		return nil, 0, err
	}

	if err := r.fillPaidAmounts(ctx, payments); err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}

func (r *paymentRepository) ListAll(ctx context.Context, filter *domainRepo.PaymentFilter) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.base(ctx, filter).
		Preload("Vehicle.Employee").
		Order("date DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}

	if err := r.fillPaidAmounts(ctx, payments); err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *paymentRepository) SumPaid(ctx context.Context, paymentID uuid.UUID) (float64, error) {
	var paid float64
	err := r.db.WithContext(ctx).Model(&entity.Installment{}).
		Where("payment_id = ?", paymentID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&paid).Error
	return paid, err
}

// fillPaidAmounts resolves paid sums for a page of payments with one grouped
// query over the installment ledger.
func (r *paymentRepository) fillPaidAmounts(ctx context.Context, payments []entity.Payment) error {
	if len(payments) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(payments))
	for _, p := range payments {
		ids = append(ids, p.ID)
	}

	type paidRow struct {
		PaymentID uuid.UUID
		Paid      float64
	}
	var rows []paidRow
	err := r.db.WithContext(ctx).Model(&entity.Installment{}).
		Select("payment_id, COALESCE(SUM(amount), 0) AS paid").
		Where("payment_id IN ?", ids).
		Group("payment_id").
		Scan(&rows).Error
	if err != nil {
		return err
	}

	paidByID := make(map[uuid.UUID]float64, len(rows))
	for _, row := range rows {
		paidByID[row.PaymentID] = row.Paid
	}
	for i := range payments {
		payments[i].FillDerived(paidByID[payments[i].ID])
	}
	return nil
}

type installmentRepository struct {
	db *gorm.DB
}

// NewInstallmentRepository creates a new installment repository
func NewInstallmentRepository(db *gorm.DB) domainRepo.InstallmentRepository {
	return &installmentRepository{db: db}
}

func (r *installmentRepository) Create(ctx context.Context, installment *entity.Installment) error {
	return r.db.WithContext(ctx).Create(installment).Error
}

func (r *installmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Installment, error) {
	var installment entity.Installment
	err := r.db.WithContext(ctx).First(&installment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &installment, err
}

func (r *installmentRepository) Update(ctx context.Context, installment *entity.Installment) error {
	return r.db.WithContext(ctx).Save(installment).Error
}

func (r *installmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Installment{}, "id = ?", id).Error
}

func (r *installmentRepository) ListByPayment(ctx context.Context, paymentID uuid.UUID, includeDeleted bool) ([]entity.Installment, error) {
	query := r.db.WithContext(ctx)
	if includeDeleted {
		query = query.Unscoped()
	}
	var installments []entity.Installment
	err := query.Where("payment_id = ?", paymentID).
		Order("date ASC").
		Find(&installments).Error
	return installments, err
}
