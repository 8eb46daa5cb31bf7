package service

import (
	"context"
	"testing"

	"github.com/fleetdesk/fleetdesk-api/internal/domain/entity"
	"github.com/fleetdesk/fleetdesk-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVehicleService() (*VehicleService, *mockVehicleRepo, *mockEmployeeRepo) {
	vehicleRepo := new(mockVehicleRepo)
	employeeRepo := new(mockEmployeeRepo)
	return NewVehicleService(vehicleRepo, employeeRepo), vehicleRepo, employeeRepo
}

func TestCreateVehicle(t *testing.T) {
	t.Run("opens a payment when the amount is positive", func(t *testing.T) {
		svc, vehicleRepo, _ := newVehicleService()

		startDate := testDate(t, "2026-02-01")
		vehicleRepo.On("GetByNumber", mock.Anything, "ABC-1234").Return(nil, nil)
		vehicleRepo.On("CreateWithInitialPayment", mock.Anything,
			mock.AnythingOfType("*entity.Vehicle"),
			mock.MatchedBy(func(p *entity.Payment) bool {
				return p.TotalAmount == 50000 && p.Date.Equal(startDate)
			})).Return(nil)

		vehicle, err := svc.CreateVehicle(context.Background(), &CreateVehicleInput{
			Number:    "ABC-1234",
			Name:      "Toyota Hilux",
			Amount:    50000,
			StartDate: &startDate,
		})

		require.NoError(t, err)
		assert.Equal(t, "ABC-1234", vehicle.Number)
		vehicleRepo.AssertExpectations(t)
		vehicleRepo.AssertNotCalled(t, "Create")
	})

	t.Run("creates without a payment when the amount is zero", func(t *testing.T) {
		svc, vehicleRepo, _ := newVehicleService()

		vehicleRepo.On("GetByNumber", mock.Anything, "ABC-1234").Return(nil, nil)
		vehicleRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Vehicle")).Return(nil)

		_, err := svc.CreateVehicle(context.Background(), &CreateVehicleInput{
			Number: "ABC-1234",
			Name:   "Toyota Hilux",
		})

		require.NoError(t, err)
		vehicleRepo.AssertNotCalled(t, "CreateWithInitialPayment")
	})

	t.Run("rejects duplicate numbers", func(t *testing.T) {
		svc, vehicleRepo, _ := newVehicleService()

		vehicleRepo.On("GetByNumber", mock.Anything, "ABC-1234").
			Return(&entity.Vehicle{ID: uuid.New(), Number: "ABC-1234"}, nil)

		_, err := svc.CreateVehicle(context.Background(), &CreateVehicleInput{
			Number: "ABC-1234",
			Name:   "Toyota Hilux",
		})

		require.Error(t, err)
		assert.Equal(t, "Vehicle with this number already exists", apperror.GetAppError(err).Message)
	})

	t.Run("rejects unknown assignee", func(t *testing.T) {
		svc, vehicleRepo, employeeRepo := newVehicleService()

		employeeID := uuid.New()
		vehicleRepo.On("GetByNumber", mock.Anything, "ABC-1234").Return(nil, nil)
		employeeRepo.On("GetByID", mock.Anything, employeeID).Return(nil, nil)

		_, err := svc.CreateVehicle(context.Background(), &CreateVehicleInput{
			Number:     "ABC-1234",
			Name:       "Toyota Hilux",
			EmployeeID: &employeeID,
		})

		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})
}

func TestTerminateVehicle(t *testing.T) {
	svc, vehicleRepo, _ := newVehicleService()

	id := uuid.New()
	employeeID := uuid.New()
	vehicleRepo.On("GetByID", mock.Anything, id).
		Return(&entity.Vehicle{ID: id, Number: "ABC-1234", EmployeeID: &employeeID}, nil)
	vehicleRepo.On("Update", mock.Anything, mock.MatchedBy(func(v *entity.Vehicle) bool {
		return v.EmployeeID == nil && v.TerminationReason != nil && *v.TerminationReason == "sold"
	})).Return(nil)

	vehicle, err := svc.TerminateVehicle(context.Background(), id, "sold", testDate(t, "2026-03-01"))

	require.NoError(t, err)
	assert.Nil(t, vehicle.EmployeeID)
	vehicleRepo.AssertExpectations(t)
}

func TestBulkImportVehicles(t *testing.T) {
	svc, vehicleRepo, employeeRepo := newVehicleService()

	assignee := &entity.Employee{ID: uuid.New(), IqamaID: "1234567890"}
	knownIqama := "1234567890"
	unknownIqama := "0000000000"

	employeeRepo.On("GetByIqamaID", mock.Anything, knownIqama).Return(assignee, nil)
	employeeRepo.On("GetByIqamaID", mock.Anything, unknownIqama).Return(nil, nil)
	vehicleRepo.On("GetByNumber", mock.Anything, mock.AnythingOfType("string")).Return(nil, nil)
	employeeRepo.On("GetByID", mock.Anything, assignee.ID).Return(assignee, nil)
	vehicleRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Vehicle")).Return(nil)

	result, err := svc.BulkImportVehicles(context.Background(), []VehicleImportRow{
		{Number: "AAA-1111", Name: "Hilux", EmployeeIqamaID: &knownIqama},
		{Number: "", Name: "Missing number"},
		{Number: "BBB-2222", Name: "Camry", EmployeeIqamaID: &unknownIqama},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, 1, result.Errors[0].Index)
	assert.Equal(t, 2, result.Errors[1].Index)
}
