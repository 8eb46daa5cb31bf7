package handler

import (
	"github.com/fleetdesk/fleetdesk-api/internal/application/service"
	"github.com/fleetdesk/fleetdesk-api/internal/domain/enum"
	"github.com/fleetdesk/fleetdesk-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler handles admin account management HTTP requests
type AdminHandler struct {
	adminService *service.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// List handles listing admin accounts
func (h *AdminHandler) List(c *gin.Context) {
	admins, err := h.adminService.ListAdmins(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Admins retrieved successfully", admins)
}

// Create handles creating an admin account
func (h *AdminHandler) Create(c *gin.Context) {
	var req struct {
		Username string         `json:"username" binding:"required"`
		Password string         `json:"password" binding:"required"`
		Role     enum.AdminRole `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	admin, err := h.adminService.CreateAdmin(c.Request.Context(), &service.CreateAdminInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Admin created successfully", admin)
}

// Get handles getting a single admin account
func (h *AdminHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid admin ID")
		return
	}

	admin, err := h.adminService.GetAdmin(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Admin retrieved successfully", admin)
}

// Update handles updating an admin account
func (h *AdminHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid admin ID")
		return
	}

	var req struct {
		Username *string         `json:"username"`
		Password *string         `json:"password"`
		Role     *enum.AdminRole `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	admin, err := h.adminService.UpdateAdmin(c.Request.Context(), &service.UpdateAdminInput{
		ID:       id,
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Admin updated successfully", admin)
}

// Delete handles removing an admin account
func (h *AdminHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid admin ID")
		return
	}

	callerID := GetAdminID(c)
	if callerID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.adminService.DeleteAdmin(c.Request.Context(), *callerID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Admin deleted successfully", nil)
}
