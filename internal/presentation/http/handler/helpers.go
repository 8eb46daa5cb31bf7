package handler

import (
	"strconv"
	"time"

	"github.com/fleetdesk/fleetdesk-api/internal/domain/enum"
	"github.com/fleetdesk/fleetdesk-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetAdminID extracts the authenticated admin's ID from the Gin context
func GetAdminID(c *gin.Context) *uuid.UUID {
	adminIDVal, exists := c.Get("admin_id")
	if !exists {
		return nil
	}
	adminID, ok := adminIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &adminID
}

// GetAdminRole extracts the authenticated admin's role from the Gin context
func GetAdminRole(c *gin.Context) enum.AdminRole {
	roleVal, exists := c.Get("admin_role")
	if !exists {
		return ""
	}
	role, ok := roleVal.(enum.AdminRole)
	if !ok {
		return ""
	}
	return role
}

// IsSuperAdmin checks if the authenticated admin has the super-admin role
func IsSuperAdmin(c *gin.Context) bool {
	return GetAdminRole(c) == enum.AdminRoleSuperAdmin
}

// getPagination reads page/per_page query parameters with defaults
func getPagination(c *gin.Context) *pagination.Params {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "25"))

	params := &pagination.Params{Page: page, PerPage: perPage}
	params.Validate()
	return params
}

// parseDateQuery reads an optional date query parameter, accepting either a
// plain date or a full RFC3339 timestamp.
func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, true
	}
	return nil, false
}
