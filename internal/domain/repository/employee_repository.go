package repository

import (
	"context"

	"github.com/fleetdesk/fleetdesk-api/internal/domain/entity"
	"github.com/fleetdesk/fleetdesk-api/internal/domain/enum"
	"github.com/fleetdesk/fleetdesk-api/pkg/pagination"
	"github.com/google/uuid"
)

// EmployeeFilter holds list filters for employees
type EmployeeFilter struct {
	// Search matches name, iqama ID and phone case-insensitively. When the
	// first pass matches nothing, a second pass compares with all spaces
	// stripped from both sides.
	Search         string
	Type           *enum.EmployeeType
	IncludeDeleted bool
}

// EmployeeRepository defines the interface for employee data operations
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)
	GetByIqamaID(ctx context.Context, iqamaID string) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	// Delete soft-deletes the employee. Vehicle assignments are left alone.
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns employees newest-first.
	List(ctx context.Context, filter *EmployeeFilter, params *pagination.Params) ([]entity.Employee, int64, error)
}
