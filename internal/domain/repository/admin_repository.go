package repository

import (
	"context"

	"github.com/fleetdesk/fleetdesk-api/internal/domain/entity"
	"github.com/google/uuid"
)

// AdminRepository defines the interface for admin account operations
type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)
	// GetByUsername looks up by the lowercased username.
	GetByUsername(ctx context.Context, username string) (*entity.Admin, error)
	Update(ctx context.Context, admin *entity.Admin) error
	// Delete removes the admin permanently.
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Admin, error)
	Count(ctx context.Context) (int64, error)
}
