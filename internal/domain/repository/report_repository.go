package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EmployeeVehicleCount is one row of the employees report
type EmployeeVehicleCount struct {
	EmployeeID   uuid.UUID `json:"employee_id"`
	Name         string    `json:"name"`
	IqamaID      string    `json:"iqama_id"`
	Type         string    `json:"type"`
	VehicleCount int64     `json:"vehicle_count"`
}

// MonthlyPaymentBucket aggregates a vehicle's payments for one calendar month
type MonthlyPaymentBucket struct {
	Month       string  `json:"month"` // YYYY-MM
	TotalAmount float64 `json:"total_amount"`
	PaidAmount  float64 `json:"paid_amount"`
	Dues        float64 `json:"dues"`
}

// LedgerSummary is the reduced totals block attached to payment/bill reports
type LedgerSummary struct {
	TotalAmount float64 `json:"total_amount"`
	PaidAmount  float64 `json:"paid_amount"`
	Dues        float64 `json:"dues"`
}

// BillsSummary extends LedgerSummary with per-type splits and the net figure
type BillsSummary struct {
	Income  LedgerSummary `json:"income"`
	Expense LedgerSummary `json:"expense"`
	Net     float64       `json:"net"` // income total - expense total
}

// ReportRepository runs the aggregate queries behind the report endpoints
type ReportRepository interface {
	// EmployeeVehicleCounts returns one row per active employee with the
	// number of vehicles assigned, zero included, in a single query.
	EmployeeVehicleCounts(ctx context.Context) ([]EmployeeVehicleCount, error)
	// VehicleMonthlyPayments buckets a vehicle's active payments by calendar
	// month, accumulating totals, paid sums and dues.
	VehicleMonthlyPayments(ctx context.Context, vehicleID uuid.UUID) ([]MonthlyPaymentBucket, error)
	PaymentsSummary(ctx context.Context, from, to *time.Time) (*LedgerSummary, error)
	BillsSummary(ctx context.Context, from, to *time.Time) (*BillsSummary, error)
}
