package repository

import (
	"context"
	"time"

	domainRepo "github.com/fleetdesk/fleetdesk-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

// EmployeeVehicleCounts returns vehicle counts for every active employee in a
// single LEFT JOIN, zero-vehicle employees included.
func (r *reportRepository) EmployeeVehicleCounts(ctx context.Context) ([]domainRepo.EmployeeVehicleCount, error) {
	var results []domainRepo.EmployeeVehicleCount

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			e.id AS employee_id,
			e.name AS name,
			e.iqama_id AS iqama_id,
			e.type AS type,
			COUNT(v.id) AS vehicle_count
		FROM employees e
		LEFT JOIN vehicles v ON v.employee_id = e.id
		WHERE e.deleted_at IS NULL
		GROUP BY e.id, e.name, e.iqama_id, e.type, e.created_at
		ORDER BY e.created_at DESC
	`).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

// VehicleMonthlyPayments buckets a vehicle's active payments by calendar
// month (YYYY-MM), summing totals and the paid amounts from the ledger.
func (r *reportRepository) VehicleMonthlyPayments(ctx context.Context, vehicleID uuid.UUID) ([]domainRepo.MonthlyPaymentBucket, error) {
	var results []domainRepo.MonthlyPaymentBucket

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			to_char(p.date, 'YYYY-MM') AS month,
			COALESCE(SUM(p.total_amount), 0) AS total_amount,
			COALESCE(SUM(paid.amount), 0) AS paid_amount
		FROM payments p
		LEFT JOIN (
			SELECT payment_id, SUM(amount) AS amount
			FROM installments
			WHERE deleted_at IS NULL
			GROUP BY payment_id
		) paid ON paid.payment_id = p.id
		WHERE p.vehicle_id = ? AND p.deleted_at IS NULL
		GROUP BY to_char(p.date, 'YYYY-MM')
		ORDER BY month ASC
	`, vehicleID).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	for i := range results {
		results[i].Dues = results[i].TotalAmount - results[i].PaidAmount
	}

	return results, nil
}

func (r *reportRepository) PaymentsSummary(ctx context.Context, from, to *time.Time) (*domainRepo.LedgerSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(p.total_amount), 0) AS total_amount,
			COALESCE(SUM(paid.amount), 0) AS paid_amount
		FROM payments p
		LEFT JOIN (
			SELECT payment_id, SUM(amount) AS amount
			FROM installments
			WHERE deleted_at IS NULL
			GROUP BY payment_id
		) paid ON paid.payment_id = p.id
		WHERE p.deleted_at IS NULL`
	args := []interface{}{}
	if from != nil {
		query += " AND p.date >= ?"
		args = append(args, *from)
	}
	if to != nil {
		query += " AND p.date <= ?"
		args = append(args, *to)
	}

	var summary domainRepo.LedgerSummary
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&summary).Error; err != nil {
		return nil, err
	}
	summary.Dues = summary.TotalAmount - summary.PaidAmount

	return &summary, nil
}

func (r *reportRepository) BillsSummary(ctx context.Context, from, to *time.Time) (*domainRepo.BillsSummary, error) {
	query := `
		SELECT
			type,
			COALESCE(SUM(total_amount), 0) AS total_amount,
			COALESCE(SUM(paid_amount), 0) AS paid_amount
		FROM bills
		WHERE 1 = 1`
	args := []interface{}{}
	if from != nil {
		query += " AND date >= ?"
		args = append(args, *from)
	}
	if to != nil {
		query += " AND date <= ?"
		args = append(args, *to)
	}
	query += " GROUP BY type"

	type typedRow struct {
		Type        string
		TotalAmount float64
		PaidAmount  float64
	}
	var rows []typedRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	var summary domainRepo.BillsSummary
	for _, row := range rows {
		ledger := domainRepo.LedgerSummary{
			TotalAmount: row.TotalAmount,
			PaidAmount:  row.PaidAmount,
			Dues:        row.TotalAmount - row.PaidAmount,
		}
		switch row.Type {
		case "income":
			summary.Income = ledger
		case "expense":
			summary.Expense = ledger
		}
	}
	summary.Net = summary.Income.TotalAmount - summary.Expense.TotalAmount

	return &summary, nil
}
