package handler

import (
	"github.com/fleetdesk/fleetdesk-api/internal/application/service"
	"github.com/fleetdesk/fleetdesk-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportHandler handles report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Employees handles the per-employee vehicle count report
func (h *ReportHandler) Employees(c *gin.Context) {
	rows, err := h.reportService.EmployeesReport(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee report retrieved successfully", rows)
}

// VehiclePayments handles the per-vehicle monthly payment report
func (h *ReportHandler) VehiclePayments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vehicle ID")
		return
	}

	buckets, err := h.reportService.VehiclePaymentsReport(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vehicle payment report retrieved successfully", buckets)
}

// Payments handles the payment ledger report with summed totals
func (h *ReportHandler) Payments(c *gin.Context) {
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

	report, err := h.reportService.PaymentsReport(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment report retrieved successfully", report)
}

// Bills handles the income/expense report with the net figure
func (h *ReportHandler) Bills(c *gin.Context) {
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

	report, err := h.reportService.BillsReport(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill report retrieved successfully", report)
}
