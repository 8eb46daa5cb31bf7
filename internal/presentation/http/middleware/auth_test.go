package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fleetdesk/fleetdesk-api/internal/domain/enum"
	"github.com/fleetdesk/fleetdesk-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(jwtManager *utils.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(jwtManager), func(c *gin.Context) {
		c.JSON(200, gin.H{"admin_id": c.MustGet("admin_id").(uuid.UUID).String()})
	})
	router.GET("/super", AuthMiddleware(jwtManager), RequireRole(enum.AdminRoleSuperAdmin), func(c *gin.Context) {
		c.Status(200)
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	router := setupAuthRouter(jwtManager)

	adminID := uuid.New()
	token, err := jwtManager.GenerateToken(adminID, "admin", enum.AdminRoleAdmin)
	require.NoError(t, err)

	t.Run("accepts a bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.Contains(t, w.Body.String(), adminID.String())
	})

	t.Run("accepts the session cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
	})

	t.Run("rejects a missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
	})

	t.Run("rejects a forged token", func(t *testing.T) {
		forged, err := utils.NewJWTManager("other-secret", time.Hour).
			GenerateToken(adminID, "admin", enum.AdminRoleAdmin)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+forged)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
	})

	t.Run("rejects a malformed authorization header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	router := setupAuthRouter(jwtManager)

	t.Run("allows super admins", func(t *testing.T) {
		token, err := jwtManager.GenerateToken(uuid.New(), "superadmin", enum.AdminRoleSuperAdmin)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/super", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
	})

	t.Run("blocks regular admins", func(t *testing.T) {
		token, err := jwtManager.GenerateToken(uuid.New(), "admin", enum.AdminRoleAdmin)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/super", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, 403, w.Code)
	})
}
