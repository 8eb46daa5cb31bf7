package service

import (
	"context"
	"strings"

	"github.com/fleetdesk/fleetdesk-api/internal/domain/entity"
	"github.com/fleetdesk/fleetdesk-api/internal/domain/enum"
	"github.com/fleetdesk/fleetdesk-api/internal/domain/repository"
	"github.com/fleetdesk/fleetdesk-api/pkg/apperror"
	"github.com/fleetdesk/fleetdesk-api/pkg/utils"
	"github.com/google/uuid"
)

// AdminService handles admin account management
type AdminService struct {
	adminRepo repository.AdminRepository
}

// NewAdminService creates a new admin service
func NewAdminService(adminRepo repository.AdminRepository) *AdminService {
	return &AdminService{adminRepo: adminRepo}
}

// Bootstrap creates the two initial accounts with the configured default
// password. It refuses to run once any admin exists.
func (s *AdminService) Bootstrap(ctx context.Context, defaultPassword string) ([]entity.Admin, error) {
	count, err := s.adminRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperror.NewConflictError("Admin accounts already initialized")
	}

	hash, err := utils.HashPassword(defaultPassword)
	if err != nil {
		return nil, err
	}

	accounts := []entity.Admin{
		{Username: "admin", Password: hash, Role: enum.AdminRoleAdmin},
		{Username: "superadmin", Password: hash, Role: enum.AdminRoleSuperAdmin},
	}
	for i := range accounts {
		if err := s.adminRepo.Create(ctx, &accounts[i]); err != nil {
			return nil, err
		}
	}

	return accounts, nil
}

// CreateAdminInput represents the create admin input
type CreateAdminInput struct {
	Username string
	Password string
	Role     enum.AdminRole
}

func validateAdminCredentials(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return apperror.NewBadRequestError("Username is required")
	}
	if len(password) < utils.MinPasswordLength {
		return apperror.NewBadRequestError("Password must be at least 8 characters")
	}
	return nil
}

// CreateAdmin creates an admin account
func (s *AdminService) CreateAdmin(ctx context.Context, input *CreateAdminInput) (*entity.Admin, error) {
	if err := validateAdminCredentials(input.Username, input.Password); err != nil {
		return nil, err
	}
	if input.Role == "" {
		input.Role = enum.AdminRoleAdmin
	}
	if !input.Role.IsValid() {
		return nil, apperror.NewBadRequestError("Role must be admin or super_admin")
	}

	existing, err := s.adminRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Admin with this username already exists")
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	admin := &entity.Admin{
		Username: strings.ToLower(input.Username),
		Password: hash,
		Role:     input.Role,
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

// GetAdmin retrieves an admin by ID
func (s *AdminService) GetAdmin(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, apperror.NewNotFoundError("Admin")
	}
	return admin, nil
}

// ListAdmins lists all admin accounts
func (s *AdminService) ListAdmins(ctx context.Context) ([]entity.Admin, error) {
	return s.adminRepo.List(ctx)
}

// UpdateAdminInput represents the update admin input
type UpdateAdminInput struct {
	ID       uuid.UUID
	Username *string
	Password *string
	Role     *enum.AdminRole
}

// UpdateAdmin updates an admin account
func (s *AdminService) UpdateAdmin(ctx context.Context, input *UpdateAdminInput) (*entity.Admin, error) {
	admin, err := s.adminRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, apperror.NewNotFoundError("Admin")
	}

	if input.Username != nil && strings.ToLower(*input.Username) != admin.Username {
		if strings.TrimSpace(*input.Username) == "" {
			return nil, apperror.NewBadRequestError("Username is required")
		}
		existing, err := s.adminRepo.GetByUsername(ctx, *input.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != admin.ID {
			return nil, apperror.NewConflictError("Admin with this username already exists")
		}
		admin.Username = strings.ToLower(*input.Username)
	}
	if input.Password != nil {
		if len(*input.Password) < utils.MinPasswordLength {
			return nil, apperror.NewBadRequestError("Password must be at least 8 characters")
		}
		hash, err := utils.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		admin.Password = hash
	}
	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, apperror.NewBadRequestError("Role must be admin or super_admin")
		}
		admin.Role = *input.Role
	}

	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

// DeleteAdmin removes an admin account. The caller's own account and the
// last remaining account are protected.
func (s *AdminService) DeleteAdmin(ctx context.Context, callerID, id uuid.UUID) error {
	if callerID == id {
		return apperror.NewBadRequestError("You cannot delete your own account")
	}

	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if admin == nil {
		return apperror.NewNotFoundError("Admin")
	}

	count, err := s.adminRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count <= 1 {
		return apperror.NewBadRequestError("Cannot delete the last remaining admin account")
	}

	return s.adminRepo.Delete(ctx, id)
}
