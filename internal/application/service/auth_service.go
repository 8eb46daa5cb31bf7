package service

import (
	"context"

	"github.com/fleetdesk/fleetdesk-api/internal/domain/entity"
	"github.com/fleetdesk/fleetdesk-api/internal/domain/repository"
	"github.com/fleetdesk/fleetdesk-api/pkg/apperror"
	"github.com/fleetdesk/fleetdesk-api/pkg/utils"
	"github.com/google/uuid"
)

// AuthService handles admin authentication
type AuthService struct {
	adminRepo  repository.AdminRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(adminRepo repository.AdminRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{adminRepo: adminRepo, jwtManager: jwtManager}
}

// LoginInput represents the login input
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	Admin *entity.Admin
	Token string
}

// Login verifies the credentials against the lowercased username and issues
// a signed session token.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, admin.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(admin.ID, admin.Username, admin.Role)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{Admin: admin, Token: token}, nil
}

// Me returns the account behind a validated session
func (s *AuthService) Me(ctx context.Context, adminID uuid.UUID) (*entity.Admin, error) {
	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, apperror.NewNotFoundError("Admin")
	}
	return admin, nil
}
