package repository

import (
	"context"
	"time"

	"github.com/fleetdesk/fleetdesk-api/internal/domain/entity"
	"github.com/fleetdesk/fleetdesk-api/internal/domain/enum"
	"github.com/fleetdesk/fleetdesk-api/pkg/pagination"
	"github.com/google/uuid"
)

// BillFilter holds list filters for bills
type BillFilter struct {
	Type       *enum.BillType
	EmployeeID *uuid.UUID
	From       *time.Time
	To         *time.Time
}

// BillRepository defines the interface for bill data operations
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	Update(ctx context.Context, bill *entity.Bill) error
	// Delete removes the bill permanently.
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *BillFilter, params *pagination.Params) ([]entity.Bill, int64, error)
	// ListAll returns every bill matching the filter, newest-first, for the
	// unpaginated range report.
	ListAll(ctx context.Context, filter *BillFilter) ([]entity.Bill, error)
}
