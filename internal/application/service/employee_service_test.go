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

func TestCreateEmployee(t *testing.T) {
	t.Run("creates employee with valid input", func(t *testing.T) {
		repo := new(mockEmployeeRepo)
		svc := NewEmployeeService(repo)

		repo.On("GetByIqamaID", mock.Anything, "1234567890").Return(nil, nil)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Employee")).Return(nil)

		employee, err := svc.CreateEmployee(context.Background(), &CreateEmployeeInput{
			Name:    "Ahmed Ali",
			IqamaID: "1234567890",
		})

		require.NoError(t, err)
		assert.Equal(t, "Ahmed Ali", employee.Name)
		assert.Equal(t, enum.EmployeeTypeEmployee, employee.Type)
		repo.AssertExpectations(t)
	})

	t.Run("rejects malformed iqama ID", func(t *testing.T) {
		repo := new(mockEmployeeRepo)
		svc := NewEmployeeService(repo)

		_, err := svc.CreateEmployee(context.Background(), &CreateEmployeeInput{
			Name:    "Ahmed Ali",
			IqamaID: "12345",
		})

		require.Error(t, err)
		assert.Equal(t, "Iqama ID must be exactly 10 digits", apperror.GetAppError(err).Message)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects malformed phone", func(t *testing.T) {
		repo := new(mockEmployeeRepo)
		svc := NewEmployeeService(repo)

		phone := "0551234567"
		_, err := svc.CreateEmployee(context.Background(), &CreateEmployeeInput{
			Name:    "Ahmed Ali",
			IqamaID: "1234567890",
			Phone:   &phone,
		})

		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})

	t.Run("rejects duplicate iqama ID", func(t *testing.T) {
		repo := new(mockEmployeeRepo)
		svc := NewEmployeeService(repo)

		repo.On("GetByIqamaID", mock.Anything, "1234567890").
			Return(&entity.Employee{ID: uuid.New(), IqamaID: "1234567890"}, nil)

		_, err := svc.CreateEmployee(context.Background(), &CreateEmployeeInput{
			Name:    "Ahmed Ali",
			IqamaID: "1234567890",
		})

		require.Error(t, err)
		assert.Equal(t, 409, apperror.GetAppError(err).Code)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		repo := new(mockEmployeeRepo)
		svc := NewEmployeeService(repo)

		_, err := svc.CreateEmployee(context.Background(), &CreateEmployeeInput{
			Name:    "Ahmed Ali",
			IqamaID: "1234567890",
			Type:    enum.EmployeeType("driver"),
		})

		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})
}

func TestUpdateEmployee(t *testing.T) {
	t.Run("returns not found for missing employee", func(t *testing.T) {
		repo := new(mockEmployeeRepo)
		svc := NewEmployeeService(repo)

		id := uuid.New()
		repo.On("GetByID", mock.Anything, id).Return(nil, nil)

		_, err := svc.UpdateEmployee(context.Background(), &UpdateEmployeeInput{ID: id})

		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})

	t.Run("rejects iqama change colliding with another employee", func(t *testing.T) {
		repo := new(mockEmployeeRepo)
		svc := NewEmployeeService(repo)

		id := uuid.New()
		newIqama := "9876543210"
		repo.On("GetByID", mock.Anything, id).
			Return(&entity.Employee{ID: id, IqamaID: "1234567890"}, nil)
		repo.On("GetByIqamaID", mock.Anything, newIqama).
			Return(&entity.Employee{ID: uuid.New(), IqamaID: newIqama}, nil)

		_, err := svc.UpdateEmployee(context.Background(), &UpdateEmployeeInput{ID: id, IqamaID: &newIqama})

		require.Error(t, err)
		assert.Equal(t, 409, apperror.GetAppError(err).Code)
	})
}

func TestTerminateEmployee(t *testing.T) {
	repo := new(mockEmployeeRepo)
	svc := NewEmployeeService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).
		Return(&entity.Employee{ID: id, IqamaID: "1234567890"}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(e *entity.Employee) bool {
		return e.TerminationReason != nil && *e.TerminationReason == "contract ended" && e.TerminationDate != nil
	})).Return(nil)
	repo.On("Delete", mock.Anything, id).Return(nil)

	err := svc.TerminateEmployee(context.Background(), id, "contract ended", testDate(t, "2026-01-15"))

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestBulkImportEmployees(t *testing.T) {
	repo := new(mockEmployeeRepo)
	svc := NewEmployeeService(repo)

	repo.On("GetByIqamaID", mock.Anything, "1111111111").Return(nil, nil)
	repo.On("GetByIqamaID", mock.Anything, "2222222222").
		Return(&entity.Employee{ID: uuid.New(), IqamaID: "2222222222"}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Employee")).Return(nil)

	result, err := svc.BulkImportEmployees(context.Background(), []EmployeeImportRow{
		{Name: "Ahmed Ali", IqamaID: "1111111111"},
		{Name: "", IqamaID: "3333333333"},
		{Name: "Omar Khan", IqamaID: "2222222222"},
		{Name: "Bad Iqama", IqamaID: "42"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	require.Len(t, result.Errors, 3)
	assert.Equal(t, 1, result.Errors[0].Index)
	assert.Equal(t, "Name is required", result.Errors[0].Message)
	assert.Equal(t, 2, result.Errors[1].Index)
	assert.Equal(t, 3, result.Errors[2].Index)
}
