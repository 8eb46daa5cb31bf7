package handler

import (
	"time"

	"github.com/fleetdesk/fleetdesk-api/internal/application/service"
	"github.com/fleetdesk/fleetdesk-api/internal/domain/repository"
	"github.com/fleetdesk/fleetdesk-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler handles payment and installment HTTP requests
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// List handles listing payments
func (h *PaymentHandler) List(c *gin.Context) {
	filter := &repository.PaymentFilter{
		IncludeDeleted: c.Query("include_deleted") == "true",
	}
	if vehicleIDStr := c.Query("vehicle_id"); vehicleIDStr != "" {
		vehicleID, err := uuid.Parse(vehicleIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid vehicle ID")
			return
		}
		filter.VehicleID = &vehicleID
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

	result, err := h.paymentService.ListPayments(c.Request.Context(), filter, getPagination(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Payments retrieved successfully", result)
}

// Create handles creating a payment
func (h *PaymentHandler) Create(c *gin.Context) {
	var req struct {
		VehicleID   uuid.UUID  `json:"vehicle_id" binding:"required"`
		TotalAmount float64    `json:"total_amount"`
		PaidAmount  float64    `json:"paid_amount"`
		Date        *time.Time `json:"date"`
		Remarks     *string    `json:"remarks"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreatePaymentInput{
		VehicleID:   req.VehicleID,
		TotalAmount: req.TotalAmount,
		PaidAmount:  req.PaidAmount,
		Remarks:     req.Remarks,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment created successfully", payment)
}

// Get handles getting a single payment with its installments
func (h *PaymentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment retrieved successfully", payment)
}

// Update handles updating a payment
func (h *PaymentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	var req struct {
		VehicleID   *uuid.UUID `json:"vehicle_id"`
		TotalAmount *float64   `json:"total_amount"`
		Date        *time.Time `json:"date"`
		Remarks     *string    `json:"remarks"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	payment, err := h.paymentService.UpdatePayment(c.Request.Context(), &service.UpdatePaymentInput{
		ID:          id,
		VehicleID:   req.VehicleID,
		TotalAmount: req.TotalAmount,
		Date:        req.Date,
		Remarks:     req.Remarks,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment updated successfully", payment)
}

// Delete handles soft-deleting a payment and its installments
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment deleted successfully", nil)
}

// ListInstallments handles listing a payment's installments
func (h *PaymentHandler) ListInstallments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	installments, err := h.paymentService.ListInstallments(c.Request.Context(), id, c.Query("include_deleted") == "true")
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Installments retrieved successfully", installments)
}

// AddInstallment handles recording an installment against a payment
func (h *PaymentHandler) AddInstallment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	var req struct {
		Amount  float64    `json:"amount"`
		Date    *time.Time `json:"date"`
		Remarks *string    `json:"remarks"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.AddInstallmentInput{
		PaymentID: id,
		Amount:    req.Amount,
		Remarks:   req.Remarks,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	installment, err := h.paymentService.AddInstallment(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Installment recorded successfully", installment)
}

// UpdateInstallment handles updating an installment
func (h *PaymentHandler) UpdateInstallment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("installmentId"))
	if err != nil {
		response.BadRequest(c, "Invalid installment ID")
		return
	}

	var req struct {
		Amount  *float64   `json:"amount"`
		Date    *time.Time `json:"date"`
		Remarks *string    `json:"remarks"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	installment, err := h.paymentService.UpdateInstallment(c.Request.Context(), &service.UpdateInstallmentInput{
		ID:      id,
		Amount:  req.Amount,
		Date:    req.Date,
		Remarks: req.Remarks,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Installment updated successfully", installment)
}

// DeleteInstallment handles soft-deleting an installment
func (h *PaymentHandler) DeleteInstallment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("installmentId"))
	if err != nil {
		response.BadRequest(c, "Invalid installment ID")
		return
	}

	if err := h.paymentService.DeleteInstallment(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Installment deleted successfully", nil)
}
