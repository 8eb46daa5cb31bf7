package service

import (
	"context"
	"time"

	"github.com/fleetdesk/fleetdesk-api/internal/domain/entity"
	"github.com/fleetdesk/fleetdesk-api/internal/domain/repository"
	"github.com/fleetdesk/fleetdesk-api/pkg/apperror"
	"github.com/fleetdesk/fleetdesk-api/pkg/pagination"
	"github.com/google/uuid"
)

const initialInstallmentRemarks = "Initial payment"

// PaymentService handles payment and installment operations. Installments
// are the ledger of record: a payment's paid amount is always the sum of its
// active installments, and every write is checked against
// paid <= total before it lands.
type PaymentService struct {
	paymentRepo     repository.PaymentRepository
	installmentRepo repository.InstallmentRepository
	vehicleRepo     repository.VehicleRepository
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	installmentRepo repository.InstallmentRepository,
	vehicleRepo repository.VehicleRepository,
) *PaymentService {
	return &PaymentService{
		paymentRepo:     paymentRepo,
		installmentRepo: installmentRepo,
		vehicleRepo:     vehicleRepo,
	}
}

// CreatePaymentInput represents the create payment input
type CreatePaymentInput struct {
	VehicleID   uuid.UUID
	TotalAmount float64
	PaidAmount  float64
	Date        time.Time
	Remarks     *string
}

// CreatePayment creates a payment. A nonzero paid amount becomes the opening
// installment, written atomically with the payment.
func (s *PaymentService) CreatePayment(ctx context.Context, input *CreatePaymentInput) (*entity.Payment, error) {
	if input.TotalAmount <= 0 {
		return nil, apperror.NewBadRequestError("Total amount must be greater than zero")
	}
	if input.PaidAmount < 0 {
		return nil, apperror.NewBadRequestError("Paid amount cannot be negative")
	}
	if input.PaidAmount > input.TotalAmount {
		return nil, apperror.NewBadRequestError("Paid amount cannot exceed total amount")
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, input.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperror.NewNotFoundError("Vehicle")
	}

	if input.Date.IsZero() {
		input.Date = time.Now()
	}

	payment := &entity.Payment{
		VehicleID:   input.VehicleID,
		TotalAmount: input.TotalAmount,
		Date:        input.Date,
		Remarks:     input.Remarks,
	}

	if input.PaidAmount > 0 {
		remarks := initialInstallmentRemarks
		installment := &entity.Installment{
			Amount:  input.PaidAmount,
			Date:    input.Date,
			Remarks: &remarks,
		}
		if err := s.paymentRepo.CreateWithInitialInstallment(ctx, payment, installment); err != nil {
			return nil, err
		}
	} else {
		if err := s.paymentRepo.Create(ctx, payment); err != nil {
			return nil, err
		}
	}

	payment.FillDerived(input.PaidAmount)
	return payment, nil
}

// GetPayment retrieves a payment with derived paid amount and dues
func (s *PaymentService) GetPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}
	return payment, nil
}

// ListPayments lists payments with the vehicle -> employee chain preloaded
func (s *PaymentService) ListPayments(ctx context.Context, filter *repository.PaymentFilter, params *pagination.Params) (*pagination.Result[entity.Payment], error) {
	payments, total, err := s.paymentRepo.List(ctx, filter, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewResult(payments, pagination.New(params.Page, params.PerPage, total)), nil
}

// UpdatePaymentInput represents the update payment input
type UpdatePaymentInput struct {
	ID          uuid.UUID
	VehicleID   *uuid.UUID
	TotalAmount *float64
	Date        *time.Time
	Remarks     *string
}

// UpdatePayment updates a payment. The total may not drop below what the
// ledger already holds.
func (s *PaymentService) UpdatePayment(ctx context.Context, input *UpdatePaymentInput) (*entity.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}

	if input.VehicleID != nil {
		vehicle, err := s.vehicleRepo.GetByID(ctx, *input.VehicleID)
		if err != nil {
			return nil, err
		}
		if vehicle == nil {
			return nil, apperror.NewNotFoundError("Vehicle")
		}
		payment.VehicleID = *input.VehicleID
	}
	if input.TotalAmount != nil {
		if *input.TotalAmount <= 0 {
			return nil, apperror.NewBadRequestError("Total amount must be greater than zero")
		}
		if *input.TotalAmount < payment.PaidAmount {
			return nil, apperror.NewBadRequestError("Total amount cannot be less than the amount already paid")
		}
		payment.TotalAmount = *input.TotalAmount
	}
	if input.Date != nil {
		payment.Date = *input.Date
	}
	if input.Remarks != nil {
		payment.Remarks = input.Remarks
	}

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	payment.FillDerived(payment.PaidAmount)
	return payment, nil
}

// DeletePayment soft-deletes a payment and all its installments atomically
func (s *PaymentService) DeletePayment(ctx context.Context, id uuid.UUID) error {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if payment == nil {
		return apperror.NewNotFoundError("Payment")
	}
	return s.paymentRepo.DeleteCascade(ctx, id)
}

// AddInstallmentInput represents the add installment input
type AddInstallmentInput struct {
	PaymentID uuid.UUID
	Amount    float64
	Date      time.Time
	Remarks   *string
}

// AddInstallment records an installment against a payment, rejecting amounts
// beyond the remaining balance.
func (s *PaymentService) AddInstallment(ctx context.Context, input *AddInstallmentInput) (*entity.Installment, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Installment amount must be greater than zero")
	}

	payment, err := s.paymentRepo.GetByID(ctx, input.PaymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}

	if input.Amount > payment.Dues {
		return nil, apperror.NewBadRequestError("Installment amount exceeds the payment's remaining balance")
	}

	if input.Date.IsZero() {
		input.Date = time.Now()
	}

	installment := &entity.Installment{
		PaymentID: input.PaymentID,
		Amount:    input.Amount,
		Date:      input.Date,
		Remarks:   input.Remarks,
	}

	if err := s.installmentRepo.Create(ctx, installment); err != nil {
		return nil, err
	}

	return installment, nil
}

// ListInstallments lists a payment's installments oldest-first
func (s *PaymentService) ListInstallments(ctx context.Context, paymentID uuid.UUID, includeDeleted bool) ([]entity.Installment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}
	return s.installmentRepo.ListByPayment(ctx, paymentID, includeDeleted)
}

// UpdateInstallmentInput represents the update installment input
type UpdateInstallmentInput struct {
	ID      uuid.UUID
	Amount  *float64
	Date    *time.Time
	Remarks *string
}

// UpdateInstallment updates an installment, re-checking the parent payment's
// balance with this installment's old amount excluded.
func (s *PaymentService) UpdateInstallment(ctx context.Context, input *UpdateInstallmentInput) (*entity.Installment, error) {
	installment, err := s.installmentRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if installment == nil {
		return nil, apperror.NewNotFoundError("Installment")
	}

	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, apperror.NewBadRequestError("Installment amount must be greater than zero")
		}
		payment, err := s.paymentRepo.GetByID(ctx, installment.PaymentID)
		if err != nil {
			return nil, err
		}
		if payment == nil {
			return nil, apperror.NewNotFoundError("Payment")
		}
		remaining := payment.TotalAmount - (payment.PaidAmount - installment.Amount)
		if *input.Amount > remaining {
			return nil, apperror.NewBadRequestError("Installment amount exceeds the payment's remaining balance")
		}
		installment.Amount = *input.Amount
	}
	if input.Date != nil {
		installment.Date = *input.Date
	}
	if input.Remarks != nil {
		installment.Remarks = input.Remarks
	}

	if err := s.installmentRepo.Update(ctx, installment); err != nil {
		return nil, err
	}

	return installment, nil
}

// DeleteInstallment soft-deletes an installment
func (s *PaymentService) DeleteInstallment(ctx context.Context, id uuid.UUID) error {
	installment, err := s.installmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if installment == nil {
		return apperror.NewNotFoundError("Installment")
	}
	return s.installmentRepo.Delete(ctx, id)
}
