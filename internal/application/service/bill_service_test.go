package service

import (
	"context"
	"testing"

	"github.com/fleetdesk/fleetdesk-api/internal/domain/entity"
	"github.com/fleetdesk/fleetdesk-api/internal/domain/enum"
	"github.com/fleetdesk/fleetdesk-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBillService() (*BillService, *mockBillRepo, *mockEmployeeRepo) {
	billRepo := new(mockBillRepo)
	employeeRepo := new(mockEmployeeRepo)
	return NewBillService(billRepo, employeeRepo), billRepo, employeeRepo
}

func TestCreateBill(t *testing.T) {
	t.Run("creates a bill and derives dues", func(t *testing.T) {
		svc, billRepo, _ := newBillService()

		billRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Bill")).Return(nil)

		bill, err := svc.CreateBill(context.Background(), &CreateBillInput{
			Type:        enum.BillTypeExpense,
			Name:        "Fuel",
			TotalAmount: 900,
			PaidAmount:  250,
		})

		require.NoError(t, err)
		assert.Equal(t, 650.0, bill.Dues)
		billRepo.AssertExpectations(t)
	})

	t.Run("rejects paid amount above total", func(t *testing.T) {
		svc, billRepo, _ := newBillService()

		_, err := svc.CreateBill(context.Background(), &CreateBillInput{
			Type:        enum.BillTypeIncome,
			Name:        "Rental",
			TotalAmount: 100,
			PaidAmount:  200,
		})

		require.Error(t, err)
		assert.Equal(t, "Paid amount cannot exceed total amount", apperror.GetAppError(err).Message)
		billRepo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		svc, _, _ := newBillService()

		_, err := svc.CreateBill(context.Background(), &CreateBillInput{
			Type:        enum.BillType("transfer"),
			Name:        "Rental",
			TotalAmount: 100,
		})

		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})

	t.Run("rejects unknown employee reference", func(t *testing.T) {
		svc, _, employeeRepo := newBillService()

		employeeID := uuid.New()
		employeeRepo.On("GetByID", mock.Anything, employeeID).Return(nil, nil)

		_, err := svc.CreateBill(context.Background(), &CreateBillInput{
			Type:        enum.BillTypeExpense,
			Name:        "Advance",
			TotalAmount: 100,
			EmployeeID:  &employeeID,
		})

		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})
}

func TestUpdateBill(t *testing.T) {
	t.Run("checks paid against total on the final values", func(t *testing.T) {
		svc, billRepo, _ := newBillService()

		id := uuid.New()
		billRepo.On("GetByID", mock.Anything, id).
			Return(&entity.Bill{ID: id, Type: enum.BillTypeExpense, TotalAmount: 500, PaidAmount: 100}, nil)

		newPaid := 600.0
		_, err := svc.UpdateBill(context.Background(), &UpdateBillInput{ID: id, PaidAmount: &newPaid})

		require.Error(t, err)
		assert.Equal(t, "Paid amount cannot exceed total amount", apperror.GetAppError(err).Message)
		billRepo.AssertNotCalled(t, "Update")
	})

	t.Run("allows raising total and paid together", func(t *testing.T) {
		svc, billRepo, _ := newBillService()

		id := uuid.New()
		billRepo.On("GetByID", mock.Anything, id).
			Return(&entity.Bill{ID: id, Type: enum.BillTypeExpense, TotalAmount: 500, PaidAmount: 100}, nil)
		billRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Bill")).Return(nil)

		newTotal := 1000.0
		newPaid := 800.0
		bill, err := svc.UpdateBill(context.Background(), &UpdateBillInput{
			ID:          id,
			TotalAmount: &newTotal,
			PaidAmount:  &newPaid,
		})

		require.NoError(t, err)
		assert.Equal(t, 200.0, bill.Dues)
	})
}

func TestDeleteBill(t *testing.T) {
	svc, billRepo, _ := newBillService()

	id := uuid.New()
	billRepo.On("GetByID", mock.Anything, id).
		Return(&entity.Bill{ID: id, Type: enum.BillTypeIncome, TotalAmount: 100}, nil)
	billRepo.On("Delete", mock.Anything, id).Return(nil)

	err := svc.DeleteBill(context.Background(), id)

	require.NoError(t, err)
	billRepo.AssertExpectations(t)
}
