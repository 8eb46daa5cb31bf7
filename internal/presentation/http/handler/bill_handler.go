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

// BillHandler handles bill-related HTTP requests
type BillHandler struct {
	billService *service.BillService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billService *service.BillService) *BillHandler {
	return &BillHandler{billService: billService}
}

// List handles listing bills with type, employee and date range filters
func (h *BillHandler) List(c *gin.Context) {
	filter := &repository.BillFilter{}
	if typeStr := c.Query("type"); typeStr != "" {
		billType := enum.BillType(typeStr)
		if !billType.IsValid() {
			response.BadRequest(c, "Type must be income or expense")
			return
		}
		filter.Type = &billType
	}
	if employeeIDStr := c.Query("employee_id"); employeeIDStr != "" {
		employeeID, err := uuid.Parse(employeeIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid employee ID")
			return
		}
		filter.EmployeeID = &employeeID
	}

	from, ok := parseDateQuery(c, "from")
	if !ok {
		response.BadRequest(c, "Invalid from date")
		return
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		response.BadRequest(c, "Invalid to date")
		return
	}
	filter.From = from
	filter.To = to

	result, err := h.billService.ListBills(c.Request.Context(), filter, getPagination(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}

// Create handles creating a bill
func (h *BillHandler) Create(c *gin.Context) {
	var req struct {
		Type        enum.BillType `json:"type" binding:"required"`
		Name        string        `json:"name" binding:"required"`
		TotalAmount float64       `json:"total_amount"`
		PaidAmount  float64       `json:"paid_amount"`
		Date        *time.Time    `json:"date"`
		EmployeeID  *uuid.UUID    `json:"employee_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateBillInput{
		Type:        req.Type,
		Name:        req.Name,
		TotalAmount: req.TotalAmount,
		PaidAmount:  req.PaidAmount,
		EmployeeID:  req.EmployeeID,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	bill, err := h.billService.CreateBill(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill created successfully", bill)
}

// Get handles getting a single bill
func (h *BillHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	bill, err := h.billService.GetBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", bill)
}

// Update handles updating a bill
func (h *BillHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	var req struct {
		Type        *enum.BillType `json:"type"`
		Name        *string        `json:"name"`
		TotalAmount *float64       `json:"total_amount"`
		PaidAmount  *float64       `json:"paid_amount"`
		Date        *time.Time     `json:"date"`
		EmployeeID  *uuid.UUID     `json:"employee_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bill, err := h.billService.UpdateBill(c.Request.Context(), &service.UpdateBillInput{
		ID:          id,
		Type:        req.Type,
		Name:        req.Name,
		TotalAmount: req.TotalAmount,
		PaidAmount:  req.PaidAmount,
		Date:        req.Date,
		EmployeeID:  req.EmployeeID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill updated successfully", bill)
}

// Delete handles permanently removing a bill
func (h *BillHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	if err := h.billService.DeleteBill(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill deleted successfully", nil)
}
