package service

import (
	"context"
	"time"

	"github.com/fleetdesk/fleetdesk-api/internal/domain/entity"
	"github.com/fleetdesk/fleetdesk-api/internal/domain/repository"
	"github.com/fleetdesk/fleetdesk-api/pkg/apperror"
	"github.com/google/uuid"
)

// ReportService assembles the report endpoints from the aggregate queries
type ReportService struct {
	reportRepo  repository.ReportRepository
	paymentRepo repository.PaymentRepository
	billRepo    repository.BillRepository
	vehicleRepo repository.VehicleRepository
}

// NewReportService creates a new report service
func NewReportService(
	reportRepo repository.ReportRepository,
	paymentRepo repository.PaymentRepository,
	billRepo repository.BillRepository,
	vehicleRepo repository.VehicleRepository,
) *ReportService {
	return &ReportService{
		reportRepo:  reportRepo,
		paymentRepo: paymentRepo,
		billRepo:    billRepo,
		vehicleRepo: vehicleRepo,
	}
}

// EmployeesReport returns one row per active employee with its vehicle count
func (s *ReportService) EmployeesReport(ctx context.Context) ([]repository.EmployeeVehicleCount, error) {
	return s.reportRepo.EmployeeVehicleCounts(ctx)
}

// VehiclePaymentsReport buckets a vehicle's payments by calendar month
func (s *ReportService) VehiclePaymentsReport(ctx context.Context, vehicleID uuid.UUID) ([]repository.MonthlyPaymentBucket, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperror.NewNotFoundError("Vehicle")
	}
	return s.reportRepo.VehicleMonthlyPayments(ctx, vehicleID)
}

// PaymentsReport is the flat payment list plus the reduced totals block
type PaymentsReport struct {
	Items   []entity.Payment          `json:"items"`
	Summary *repository.LedgerSummary `json:"summary"`
}

// PaymentsReport lists every payment in the range with the summed totals.
// The list is unpaginated so the items always reconcile with the summary.
func (s *ReportService) PaymentsReport(ctx context.Context, from, to *time.Time) (*PaymentsReport, error) {
	payments, err := s.paymentRepo.ListAll(ctx, &repository.PaymentFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}

	summary, err := s.reportRepo.PaymentsSummary(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &PaymentsReport{Items: payments, Summary: summary}, nil
}

// BillsReport is the flat bill list plus per-type totals and the net figure
type BillsReport struct {
	Items   []entity.Bill            `json:"items"`
	Summary *repository.BillsSummary `json:"summary"`
}

// BillsReport lists every bill in the range with income/expense totals and
// net. Unpaginated for the same reason as PaymentsReport.
func (s *ReportService) BillsReport(ctx context.Context, from, to *time.Time) (*BillsReport, error) {
	bills, err := s.billRepo.ListAll(ctx, &repository.BillFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}

	summary, err := s.reportRepo.BillsSummary(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &BillsReport{Items: bills, Summary: summary}, nil
}
