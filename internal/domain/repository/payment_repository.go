package repository

import (
	"context"
	"time"

	"github.com/fleetdesk/fleetdesk-api/internal/domain/entity"
	"github.com/fleetdesk/fleetdesk-api/pkg/pagination"
	"github.com/google/uuid"
)

// PaymentFilter holds list filters for payments
type PaymentFilter struct {
	VehicleID      *uuid.UUID
	From           *time.Time
	To             *time.Time
	IncludeDeleted bool
}

// PaymentRepository defines the interface for payment data operations.
// Paid amounts are always derived from the installment ledger.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	// CreateWithInitialInstallment records the payment and its opening
	// installment atomically.
	CreateWithInitialInstallment(ctx context.Context, payment *entity.Payment, installment *entity.Installment) error
	// GetByID returns the payment with PaidAmount/Dues filled from the ledger
	// and the vehicle -> employee chain preloaded.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	Update(ctx context.Context, payment *entity.Payment) error
	// DeleteCascade soft-deletes the payment and every installment that
	// references it in a single transaction.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *PaymentFilter, params *pagination.Params) ([]entity.Payment, int64, error)
	// ListAll returns every payment matching the filter, newest-first. The
	// range report is a flat list, so it reads the whole window unpaginated.
	ListAll(ctx context.Context, filter *PaymentFilter) ([]entity.Payment, error)
	// SumPaid returns the summed amount of the payment's active installments.
	SumPaid(ctx context.Context, paymentID uuid.UUID) (float64, error)
}

// InstallmentRepository defines the interface for installment data operations
type InstallmentRepository interface {
	Create(ctx context.Context, installment *entity.Installment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Installment, error)
	Update(ctx context.Context, installment *entity.Installment) error
	// Delete soft-deletes the installment.
	Delete(ctx context.Context, id uuid.UUID) error
	ListByPayment(ctx context.Context, paymentID uuid.UUID, includeDeleted bool) ([]entity.Installment, error)
}
