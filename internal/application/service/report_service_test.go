package service

import (
	"context"
	"testing"

	"github.com/fleetdesk/fleetdesk-api/internal/domain/entity"
	"github.com/fleetdesk/fleetdesk-api/internal/domain/repository"
	"github.com/fleetdesk/fleetdesk-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReportService() (*ReportService, *mockReportRepo, *mockPaymentRepo, *mockBillRepo, *mockVehicleRepo) {
	reportRepo := new(mockReportRepo)
	paymentRepo := new(mockPaymentRepo)
	billRepo := new(mockBillRepo)
	vehicleRepo := new(mockVehicleRepo)
	return NewReportService(reportRepo, paymentRepo, billRepo, vehicleRepo), reportRepo, paymentRepo, billRepo, vehicleRepo
}

func TestVehiclePaymentsReport(t *testing.T) {
	t.Run("returns monthly buckets for a known vehicle", func(t *testing.T) {
		svc, reportRepo, _, _, vehicleRepo := newReportService()

		vehicleID := uuid.New()
		vehicleRepo.On("GetByID", mock.Anything, vehicleID).
			Return(&entity.Vehicle{ID: vehicleID}, nil)
		reportRepo.On("VehicleMonthlyPayments", mock.Anything, vehicleID).
			Return([]repository.MonthlyPaymentBucket{
				{Month: "2026-01", TotalAmount: 1000, PaidAmount: 400, Dues: 600},
			}, nil)

		buckets, err := svc.VehiclePaymentsReport(context.Background(), vehicleID)

		require.NoError(t, err)
		require.Len(t, buckets, 1)
		assert.Equal(t, "2026-01", buckets[0].Month)
	})

	t.Run("returns not found for an unknown vehicle", func(t *testing.T) {
		svc, reportRepo, _, _, vehicleRepo := newReportService()

		vehicleID := uuid.New()
		vehicleRepo.On("GetByID", mock.Anything, vehicleID).Return(nil, nil)

		_, err := svc.VehiclePaymentsReport(context.Background(), vehicleID)

		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
		reportRepo.AssertNotCalled(t, "VehicleMonthlyPayments")
	})
}

func TestPaymentsReport(t *testing.T) {
	t.Run("returns every payment in the range alongside the summary", func(t *testing.T) {
		svc, reportRepo, paymentRepo, _, _ := newReportService()

		from := testDate(t, "2026-01-01")
		to := testDate(t, "2026-06-30")

		payments := make([]entity.Payment, 250)
		for i := range payments {
			payments[i] = entity.Payment{ID: uuid.New(), TotalAmount: 10}
		}
		paymentRepo.On("ListAll", mock.Anything, mock.MatchedBy(func(f *repository.PaymentFilter) bool {
			return f.From != nil && f.From.Equal(from) && f.To != nil && f.To.Equal(to)
		})).Return(payments, nil)
		reportRepo.On("PaymentsSummary", mock.Anything, &from, &to).
			Return(&repository.LedgerSummary{TotalAmount: 2500, PaidAmount: 1000, Dues: 1500}, nil)

		report, err := svc.PaymentsReport(context.Background(), &from, &to)

		require.NoError(t, err)
		// the items cover the whole range, matching what the summary sums
		assert.Len(t, report.Items, 250)
		assert.Equal(t, 2500.0, report.Summary.TotalAmount)
		paymentRepo.AssertNotCalled(t, "List")
	})
}

func TestBillsReport(t *testing.T) {
	svc, reportRepo, _, billRepo, _ := newReportService()

	from := testDate(t, "2026-01-01")
	to := testDate(t, "2026-06-30")

	billRepo.On("ListAll", mock.Anything, mock.MatchedBy(func(f *repository.BillFilter) bool {
		return f.From != nil && f.From.Equal(from) && f.To != nil && f.To.Equal(to)
	})).Return([]entity.Bill{}, nil)
	reportRepo.On("BillsSummary", mock.Anything, &from, &to).
		Return(&repository.BillsSummary{
			Income:  repository.LedgerSummary{TotalAmount: 5000, PaidAmount: 4000, Dues: 1000},
			Expense: repository.LedgerSummary{TotalAmount: 3000, PaidAmount: 3000},
			Net:     2000,
		}, nil)

	report, err := svc.BillsReport(context.Background(), &from, &to)

	require.NoError(t, err)
	assert.Equal(t, 2000.0, report.Summary.Net)
	assert.Equal(t, 5000.0, report.Summary.Income.TotalAmount)
}
