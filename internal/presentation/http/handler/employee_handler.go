package handler

import (
	"time"

	"github.com/fleetdesk/fleetdesk-api/internal/application/service"
	"github.com/fleetdesk/fleetdesk-api/internal/domain/enum"
	"github.com/fleetdesk/fleetdesk-api/internal/domain/repository"
	"github.com/fleetdesk/fleetdesk-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EmployeeHandler handles employee-related HTTP requests
type EmployeeHandler struct {
	employeeService *service.EmployeeService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// List handles listing employees with search and type filters
func (h *EmployeeHandler) List(c *gin.Context) {
	filter := &repository.EmployeeFilter{
		Search:         c.Query("search"),
		IncludeDeleted: c.Query("include_deleted") == "true",
	}
	if typeStr := c.Query("type"); typeStr != "" {
		employeeType := enum.EmployeeType(typeStr)
		if !employeeType.IsValid() {
			response.BadRequest(c, "Type must be employee or agent")
			return
		}
		filter.Type = &employeeType
	}

	result, err := h.employeeService.ListEmployees(c.Request.Context(), filter, getPagination(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Employees retrieved successfully", result)
}

// Create handles creating an employee
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req struct {
		Name      string            `json:"name" binding:"required"`
		IqamaID   string            `json:"iqama_id" binding:"required"`
		Phone     *string           `json:"phone"`
		Type      enum.EmployeeType `json:"type"`
		JoinDate  *time.Time        `json:"join_date"`
		ImageURLs []string          `json:"image_urls"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), &service.CreateEmployeeInput{
		Name:      req.Name,
		IqamaID:   req.IqamaID,
		Phone:     req.Phone,
		Type:      req.Type,
		JoinDate:  req.JoinDate,
		ImageURLs: req.ImageURLs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Employee created successfully", employee)
}

// Get handles getting a single employee
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	employee, err := h.employeeService.GetEmployee(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee retrieved successfully", employee)
}

// Update handles updating an employee
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	var req struct {
		Name      *string            `json:"name"`
		IqamaID   *string            `json:"iqama_id"`
		Phone     *string            `json:"phone"`
		Type      *enum.EmployeeType `json:"type"`
		JoinDate  *time.Time         `json:"join_date"`
		ImageURLs []string           `json:"image_urls"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), &service.UpdateEmployeeInput{
		ID:        id,
		Name:      req.Name,
		IqamaID:   req.IqamaID,
		Phone:     req.Phone,
		Type:      req.Type,
		JoinDate:  req.JoinDate,
		ImageURLs: req.ImageURLs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee updated successfully", employee)
}

// Delete handles soft-deleting an employee
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee deleted successfully", nil)
}

// Terminate handles terminating an employee with a recorded reason
func (h *EmployeeHandler) Terminate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	var req struct {
		Reason string     `json:"reason" binding:"required"`
		Date   *time.Time `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	if err := h.employeeService.TerminateEmployee(c.Request.Context(), id, req.Reason, date); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee terminated successfully", nil)
}

// BulkImport handles the bulk employee upload
func (h *EmployeeHandler) BulkImport(c *gin.Context) {
	var req struct {
		Rows []service.EmployeeImportRow `json:"rows" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.employeeService.BulkImportEmployees(c.Request.Context(), req.Rows)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee import processed", result)
}
