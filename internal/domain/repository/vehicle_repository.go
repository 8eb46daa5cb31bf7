package repository

import (
	"context"

	"github.com/fleetdesk/fleetdesk-api/internal/domain/entity"
	"github.com/fleetdesk/fleetdesk-api/internal/domain/enum"
	"github.com/fleetdesk/fleetdesk-api/pkg/pagination"
	"github.com/google/uuid"
)

// VehicleFilter holds list filters for vehicles
type VehicleFilter struct {
	Search     string
	Type       *enum.VehicleType
	EmployeeID *uuid.UUID
}

// VehicleRepository defines the interface for vehicle data operations
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	// CreateWithInitialPayment creates the vehicle and its opening payment in
	// one transaction; either both rows exist afterwards or neither does.
	CreateWithInitialPayment(ctx context.Context, vehicle *entity.Vehicle, payment *entity.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)
	GetByNumber(ctx context.Context, number string) (*entity.Vehicle, error)
	Update(ctx context.Context, vehicle *entity.Vehicle) error
	// Delete removes the vehicle permanently.
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns vehicles newest-first with the assigned employee preloaded.
	List(ctx context.Context, filter *VehicleFilter, params *pagination.Params) ([]entity.Vehicle, int64, error)
	// ExpiringBefore returns vehicles whose contract expiry falls inside the
	// window, used by the daily expiry sweep.
	ExpiringBefore(ctx context.Context, days int) ([]entity.Vehicle, error)
}
