package service

import (
	"context"
	"testing"
	"time"

	"github.com/fleetdesk/fleetdesk-api/internal/domain/entity"
	"github.com/fleetdesk/fleetdesk-api/internal/domain/enum"
	"github.com/fleetdesk/fleetdesk-api/pkg/apperror"
	"github.com/fleetdesk/fleetdesk-api/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)

	hash, err := utils.HashPassword("correct-password")
	require.NoError(t, err)

	admin := &entity.Admin{
		ID:       uuid.New(),
		Username: "admin",
		Password: hash,
		Role:     enum.AdminRoleAdmin,
	}

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		repo := new(mockAdminRepo)
		svc := NewAuthService(repo, jwtManager)

		repo.On("GetByUsername", mock.Anything, "admin").Return(admin, nil)

		out, err := svc.Login(context.Background(), &LoginInput{
			Username: "admin",
			Password: "correct-password",
		})

		require.NoError(t, err)
		require.NotEmpty(t, out.Token)

		claims, err := jwtManager.ValidateToken(out.Token)
		require.NoError(t, err)
		assert.Equal(t, admin.ID, claims.AdminID)
		assert.Equal(t, enum.AdminRoleAdmin, claims.Role)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		repo := new(mockAdminRepo)
		svc := NewAuthService(repo, jwtManager)

		repo.On("GetByUsername", mock.Anything, "admin").Return(admin, nil)

		_, err := svc.Login(context.Background(), &LoginInput{
			Username: "admin",
			Password: "wrong-password",
		})

		require.Error(t, err)
		assert.Equal(t, "Invalid username or password", apperror.GetAppError(err).Message)
	})

	t.Run("rejects an unknown username with the same message", func(t *testing.T) {
		repo := new(mockAdminRepo)
		svc := NewAuthService(repo, jwtManager)

		repo.On("GetByUsername", mock.Anything, "ghost").Return(nil, nil)

		_, err := svc.Login(context.Background(), &LoginInput{
			Username: "ghost",
			Password: "whatever",
		})

		require.Error(t, err)
		assert.Equal(t, "Invalid username or password", apperror.GetAppError(err).Message)
	})
}
