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

// VehicleHandler handles vehicle-related HTTP requests
type VehicleHandler struct {
	vehicleService *service.VehicleService
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(vehicleService *service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// List handles listing vehicles with search, type and assignee filters
func (h *VehicleHandler) List(c *gin.Context) {
	filter := &repository.VehicleFilter{Search: c.Query("search")}
	if typeStr := c.Query("type"); typeStr != "" {
		vehicleType := enum.VehicleType(typeStr)
		if !vehicleType.IsValid() {
			response.BadRequest(c, "Type must be private or public")
			return
		}
		filter.Type = &vehicleType
	}
	if employeeIDStr := c.Query("employee_id"); employeeIDStr != "" {
		employeeID, err := uuid.Parse(employeeIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid employee ID")
			return
		}
		filter.EmployeeID = &employeeID
	}

	result, err := h.vehicleService.ListVehicles(c.Request.Context(), filter, getPagination(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Vehicles retrieved successfully", result)
}

// Create handles creating a vehicle
func (h *VehicleHandler) Create(c *gin.Context) {
	var req struct {
		Number         string           `json:"number" binding:"required"`
		Name           string           `json:"name" binding:"required"`
		SerialNumber   *string          `json:"serial_number"`
		Type           enum.VehicleType `json:"type"`
		Model          *string          `json:"model"`
		Amount         float64          `json:"amount"`
		StartDate      *time.Time       `json:"start_date"`
		ContractExpiry *time.Time       `json:"contract_expiry"`
		Description    *string          `json:"description"`
		EmployeeID     *uuid.UUID       `json:"employee_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	vehicle, err := h.vehicleService.CreateVehicle(c.Request.Context(), &service.CreateVehicleInput{
		Number:         req.Number,
		Name:           req.Name,
		SerialNumber:   req.SerialNumber,
		Type:           req.Type,
		Model:          req.Model,
		Amount:         req.Amount,
		StartDate:      req.StartDate,
		ContractExpiry: req.ContractExpiry,
		Description:    req.Description,
		EmployeeID:     req.EmployeeID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Vehicle created successfully", vehicle)
}

// Get handles getting a single vehicle
func (h *VehicleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vehicle ID")
		return
	}

	vehicle, err := h.vehicleService.GetVehicle(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vehicle retrieved successfully", vehicle)
}

// Update handles updating a vehicle
func (h *VehicleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vehicle ID")
		return
	}

	var req struct {
		Number         *string           `json:"number"`
		Name           *string           `json:"name"`
		SerialNumber   *string           `json:"serial_number"`
		Type           *enum.VehicleType `json:"type"`
		Model          *string           `json:"model"`
		Amount         *float64          `json:"amount"`
		StartDate      *time.Time        `json:"start_date"`
		ContractExpiry *time.Time        `json:"contract_expiry"`
		Description    *string           `json:"description"`
		EmployeeID     *uuid.UUID        `json:"employee_id"`
		ClearEmployee  bool              `json:"clear_employee"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	vehicle, err := h.vehicleService.UpdateVehicle(c.Request.Context(), &service.UpdateVehicleInput{
		ID:             id,
		Number:         req.Number,
		Name:           req.Name,
		SerialNumber:   req.SerialNumber,
		Type:           req.Type,
		Model:          req.Model,
		Amount:         req.Amount,
		StartDate:      req.StartDate,
		ContractExpiry: req.ContractExpiry,
		Description:    req.Description,
		EmployeeID:     req.EmployeeID,
		ClearEmployee:  req.ClearEmployee,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vehicle updated successfully", vehicle)
}

// Delete handles permanently removing a vehicle
func (h *VehicleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vehicle ID")
		return
	}

	if err := h.vehicleService.DeleteVehicle(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vehicle deleted successfully", nil)
}

// Terminate handles ending a vehicle contract with a recorded reason
func (h *VehicleHandler) Terminate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vehicle ID")
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

	vehicle, err := h.vehicleService.TerminateVehicle(c.Request.Context(), id, req.Reason, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vehicle terminated successfully", vehicle)
}

// BulkImport handles the bulk vehicle upload
func (h *VehicleHandler) BulkImport(c *gin.Context) {
	var req struct {
		Rows []service.VehicleImportRow `json:"rows" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.vehicleService.BulkImportVehicles(c.Request.Context(), req.Rows)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vehicle import processed", result)
}
