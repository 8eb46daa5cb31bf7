package handler

import (
	"github.com/fleetdesk/fleetdesk-api/internal/application/service"
	"github.com/fleetdesk/fleetdesk-api/internal/presentation/http/dto/response"
	"github.com/fleetdesk/fleetdesk-api/internal/presentation/http/middleware"
	"github.com/fleetdesk/fleetdesk-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService       *service.AuthService
	adminService      *service.AdminService
	jwtManager        *utils.JWTManager
	bootstrapPassword string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	authService *service.AuthService,
	adminService *service.AdminService,
	jwtManager *utils.JWTManager,
	bootstrapPassword string,
) *AuthHandler {
	return &AuthHandler{
		authService:       authService,
		adminService:      adminService,
		jwtManager:        jwtManager,
		bootstrapPassword: bootstrapPassword,
	}
}

// Login handles admin login. The token is returned in the body and also set
// as an HTTP-only cookie for browser clients.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	out, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetCookie(
		middleware.SessionCookieName,
		out.Token,
		int(h.jwtManager.Expiry().Seconds()),
		"/",
		"",
		false,
		true,
	)

	response.OK(c, "Login successful", gin.H{
		"admin": out.Admin,
		"token": out.Token,
	})
}

// Logout clears the session cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	response.OK(c, "Logout successful", nil)
}

// Init bootstraps the two initial admin accounts. It refuses to run once any
// admin exists.
func (h *AuthHandler) Init(c *gin.Context) {
	admins, err := h.adminService.Bootstrap(c.Request.Context(), h.bootstrapPassword)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Admin accounts initialized", admins)
}

// Me returns the authenticated admin's account
func (h *AuthHandler) Me(c *gin.Context) {
	adminID := GetAdminID(c)
	if adminID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	admin, err := h.authService.Me(c.Request.Context(), *adminID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Account retrieved successfully", admin)
}
