package service

import (
	"context"
	"testing"
	"time"

	"github.com/fleetdesk/fleetdesk-api/internal/domain/entity"
	"github.com/fleetdesk/fleetdesk-api/internal/domain/repository"
	"github.com/fleetdesk/fleetdesk-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return date
}

type mockEmployeeRepo struct {
	mock.Mock
}

func (m *mockEmployeeRepo) Create(ctx context.Context, employee *entity.Employee) error {
	return m.Called(ctx, employee).Error(0)
}

func (m *mockEmployeeRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Employee), args.Error(1)
}

func (m *mockEmployeeRepo) GetByIqamaID(ctx context.Context, iqamaID string) (*entity.Employee, error) {
	args := m.Called(ctx, iqamaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Employee), args.Error(1)
}

func (m *mockEmployeeRepo) Update(ctx context.Context, employee *entity.Employee) error {
	return m.Called(ctx, employee).Error(0)
}

func (m *mockEmployeeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockEmployeeRepo) List(ctx context.Context, filter *repository.EmployeeFilter, params *pagination.Params) ([]entity.Employee, int64, error) {
	args := m.Called(ctx, filter, params)
	return args.Get(0).([]entity.Employee), args.Get(1).(int64), args.Error(2)
}

type mockVehicleRepo struct {
	mock.Mock
}

func (m *mockVehicleRepo) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	return m.Called(ctx, vehicle).Error(0)
}

func (m *mockVehicleRepo) CreateWithInitialPayment(ctx context.Context, vehicle *entity.Vehicle, payment *entity.Payment) error {
	return m.Called(ctx, vehicle, payment).Error(0)
}

func (m *mockVehicleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Vehicle), args.Error(1)
}

func (m *mockVehicleRepo) GetByNumber(ctx context.Context, number string) (*entity.Vehicle, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Vehicle), args.Error(1)
}

func (m *mockVehicleRepo) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	return m.Called(ctx, vehicle).Error(0)
}

func (m *mockVehicleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockVehicleRepo) List(ctx context.Context, filter *repository.VehicleFilter, params *pagination.Params) ([]entity.Vehicle, int64, error) {
	args := m.Called(ctx, filter, params)
	return args.Get(0).([]entity.Vehicle), args.Get(1).(int64), args.Error(2)
}

func (m *mockVehicleRepo) ExpiringBefore(ctx context.Context, days int) ([]entity.Vehicle, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Vehicle), args.Error(1)
}

type mockPaymentRepo struct {
	mock.Mock
}

func (m *mockPaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *mockPaymentRepo) CreateWithInitialInstallment(ctx context.Context, payment *entity.Payment, installment *entity.Installment) error {
	return m.Called(ctx, payment, installment).Error(0)
}

func (m *mockPaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Payment), args.Error(1)
}

func (m *mockPaymentRepo) Update(ctx context.Context, payment *entity.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *mockPaymentRepo) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPaymentRepo) List(ctx context.Context, filter *repository.PaymentFilter, params *pagination.Params) ([]entity.Payment, int64, error) {
	args := m.Called(ctx, filter, params)
	return args.Get(0).([]entity.Payment), args.Get(1).(int64), args.Error(2)
}

func (m *mockPaymentRepo) ListAll(ctx context.Context, filter *repository.PaymentFilter) ([]entity.Payment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Payment), args.Error(1)
}

func (m *mockPaymentRepo) SumPaid(ctx context.Context, paymentID uuid.UUID) (float64, error) {
	args := m.Called(ctx, paymentID)
	return args.Get(0).(float64), args.Error(1)
}

type mockInstallmentRepo struct {
	mock.Mock
}

func (m *mockInstallmentRepo) Create(ctx context.Context, installment *entity.Installment) error {
	return m.Called(ctx, installment).Error(0)
}

func (m *mockInstallmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Installment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Installment), args.Error(1)
}

func (m *mockInstallmentRepo) Update(ctx context.Context, installment *entity.Installment) error {
	return m.Called(ctx, installment).Error(0)
}

func (m *mockInstallmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockInstallmentRepo) ListByPayment(ctx context.Context, paymentID uuid.UUID, includeDeleted bool) ([]entity.Installment, error) {
	args := m.Called(ctx, paymentID, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Installment), args.Error(1)
}

type mockBillRepo struct {
	mock.Mock
}

func (m *mockBillRepo) Create(ctx context.Context, bill *entity.Bill) error {
	return m.Called(ctx, bill).Error(0)
}

func (m *mockBillRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Bill), args.Error(1)
}

func (m *mockBillRepo) Update(ctx context.Context, bill *entity.Bill) error {
	return m.Called(ctx, bill).Error(0)
}

func (m *mockBillRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBillRepo) List(ctx context.Context, filter *repository.BillFilter, params *pagination.Params) ([]entity.Bill, int64, error) {
	args := m.Called(ctx, filter, params)
	return args.Get(0).([]entity.Bill), args.Get(1).(int64), args.Error(2)
}

func (m *mockBillRepo) ListAll(ctx context.Context, filter *repository.BillFilter) ([]entity.Bill, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Bill), args.Error(1)
}

type mockAdminRepo struct {
	mock.Mock
}

func (m *mockAdminRepo) Create(ctx context.Context, admin *entity.Admin) error {
	return m.Called(ctx, admin).Error(0)
}

func (m *mockAdminRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Admin), args.Error(1)
}

func (m *mockAdminRepo) GetByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Admin), args.Error(1)
}

func (m *mockAdminRepo) Update(ctx context.Context, admin *entity.Admin) error {
	return m.Called(ctx, admin).Error(0)
}

func (m *mockAdminRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockAdminRepo) List(ctx context.Context) ([]entity.Admin, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Admin), args.Error(1)
}

func (m *mockAdminRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockReportRepo struct {
	mock.Mock
}

func (m *mockReportRepo) EmployeeVehicleCounts(ctx context.Context) ([]repository.EmployeeVehicleCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.EmployeeVehicleCount), args.Error(1)
}

func (m *mockReportRepo) VehicleMonthlyPayments(ctx context.Context, vehicleID uuid.UUID) ([]repository.MonthlyPaymentBucket, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.MonthlyPaymentBucket), args.Error(1)
}

func (m *mockReportRepo) PaymentsSummary(ctx context.Context, from, to *time.Time) (*repository.LedgerSummary, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.LedgerSummary), args.Error(1)
}

func (m *mockReportRepo) BillsSummary(ctx context.Context, from, to *time.Time) (*repository.BillsSummary, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BillsSummary), args.Error(1)
}
