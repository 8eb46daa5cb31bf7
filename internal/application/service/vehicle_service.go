package service

import (
	"context"
	"time"

	"github.com/fleetdesk/fleetdesk-api/internal/domain/entity"
	"github.com/fleetdesk/fleetdesk-api/internal/domain/enum"
	"github.com/fleetdesk/fleetdesk-api/internal/domain/repository"
	"github.com/fleetdesk/fleetdesk-api/pkg/apperror"
	"github.com/fleetdesk/fleetdesk-api/pkg/pagination"
	"github.com/google/uuid"
)

// VehicleService handles vehicle-related operations
type VehicleService struct {
	vehicleRepo  repository.VehicleRepository
	employeeRepo repository.EmployeeRepository
}

// NewVehicleService creates a new vehicle service
func NewVehicleService(vehicleRepo repository.VehicleRepository, employeeRepo repository.EmployeeRepository) *VehicleService {
	return &VehicleService{vehicleRepo: vehicleRepo, employeeRepo: employeeRepo}
}

// CreateVehicleInput represents the create vehicle input
type CreateVehicleInput struct {
	Number         string
	Name           string
	SerialNumber   *string
	Type           enum.VehicleType
	Model          *string
	Amount         float64
	StartDate      *time.Time
	ContractExpiry *time.Time
	Description    *string
	EmployeeID     *uuid.UUID
}

// CreateVehicle creates a vehicle. A positive amount also opens the vehicle's
// receivable: one payment with the full amount and nothing paid, dated to the
// start date (or now), written in the same transaction.
func (s *VehicleService) CreateVehicle(ctx context.Context, input *CreateVehicleInput) (*entity.Vehicle, error) {
	if input.Type == "" {
		input.Type = enum.VehicleTypePrivate
	}
	if !input.Type.IsValid() {
		return nil, apperror.NewBadRequestError("Type must be private or public")
	}
	if input.Amount < 0 {
		return nil, apperror.NewBadRequestError("Amount cannot be negative")
	}

	existing, err := s.vehicleRepo.GetByNumber(ctx, input.Number)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Vehicle with this number already exists")
	}

	if input.EmployeeID != nil {
		employee, err := s.employeeRepo.GetByID(ctx, *input.EmployeeID)
		if err != nil {
			return nil, err
		}
		if employee == nil {
			return nil, apperror.NewNotFoundError("Employee")
		}
	}

	vehicle := &entity.Vehicle{
		Number:         input.Number,
		Name:           input.Name,
		SerialNumber:   input.SerialNumber,
		Type:           input.Type,
		Model:          input.Model,
		Amount:         input.Amount,
		StartDate:      input.StartDate,
		ContractExpiry: input.ContractExpiry,
		Description:    input.Description,
		EmployeeID:     input.EmployeeID,
	}

	if input.Amount > 0 {
		paymentDate := time.Now()
		if input.StartDate != nil {
			paymentDate = *input.StartDate
		}
		payment := &entity.Payment{
			TotalAmount: input.Amount,
			Date:        paymentDate,
		}
		if err := s.vehicleRepo.CreateWithInitialPayment(ctx, vehicle, payment); err != nil {
			return nil, err
		}
		return vehicle, nil
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// GetVehicle retrieves a vehicle by ID
func (s *VehicleService) GetVehicle(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperror.NewNotFoundError("Vehicle")
	}
	return vehicle, nil
}

// ListVehicles lists vehicles newest-first with assigned employees preloaded
func (s *VehicleService) ListVehicles(ctx context.Context, filter *repository.VehicleFilter, params *pagination.Params) (*pagination.Result[entity.Vehicle], error) {
	vehicles, total, err := s.vehicleRepo.List(ctx, filter, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewResult(vehicles, pagination.New(params.Page, params.PerPage, total)), nil
}

// UpdateVehicleInput represents the update vehicle input
type UpdateVehicleInput struct {
	ID             uuid.UUID
	Number         *string
	Name           *string
	SerialNumber   *string
	Type           *enum.VehicleType
	Model          *string
	Amount         *float64
	StartDate      *time.Time
	ContractExpiry *time.Time
	Description    *string
	EmployeeID     *uuid.UUID
	ClearEmployee  bool
}

// UpdateVehicle replaces the whitelisted vehicle fields
func (s *VehicleService) UpdateVehicle(ctx context.Context, input *UpdateVehicleInput) (*entity.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperror.NewNotFoundError("Vehicle")
	}

	if input.Number != nil && *input.Number != vehicle.Number {
		existing, err := s.vehicleRepo.GetByNumber(ctx, *input.Number)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != vehicle.ID {
			return nil, apperror.NewConflictError("Vehicle with this number already exists")
		}
		vehicle.Number = *input.Number
	}
	if input.Name != nil {
		vehicle.Name = *input.Name
	}
	if input.SerialNumber != nil {
		vehicle.SerialNumber = input.SerialNumber
	}
	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, apperror.NewBadRequestError("Type must be private or public")
		}
		vehicle.Type = *input.Type
	}
	if input.Model != nil {
		vehicle.Model = input.Model
	}
	if input.Amount != nil {
		if *input.Amount < 0 {
			return nil, apperror.NewBadRequestError("Amount cannot be negative")
		}
		vehicle.Amount = *input.Amount
	}
	if input.StartDate != nil {
		vehicle.StartDate = input.StartDate
	}
	if input.ContractExpiry != nil {
		vehicle.ContractExpiry = input.ContractExpiry
	}
	if input.Description != nil {
		vehicle.Description = input.Description
	}
	if input.ClearEmployee {
		vehicle.EmployeeID = nil
		vehicle.Employee = nil
	} else if input.EmployeeID != nil {
		employee, err := s.employeeRepo.GetByID(ctx, *input.EmployeeID)
		if err != nil {
			return nil, err
		}
		if employee == nil {
			return nil, apperror.NewNotFoundError("Employee")
		}
		vehicle.EmployeeID = input.EmployeeID
	}

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// DeleteVehicle removes a vehicle permanently
func (s *VehicleService) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if vehicle == nil {
		return apperror.NewNotFoundError("Vehicle")
	}
	return s.vehicleRepo.Delete(ctx, id)
}

// TerminateVehicle records the termination reason and date and unassigns the
// employee. The vehicle record itself stays.
func (s *VehicleService) TerminateVehicle(ctx context.Context, id uuid.UUID, reason string, date time.Time) (*entity.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperror.NewNotFoundError("Vehicle")
	}

	vehicle.TerminationReason = &reason
	vehicle.TerminationDate = &date
	vehicle.EmployeeID = nil
	vehicle.Employee = nil

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// VehicleImportRow is one row of a bulk vehicle upload. The employee column
// references the assignee by iqama ID, matching the upload template.
type VehicleImportRow struct {
	Number          string           `json:"number"`
	Name            string           `json:"name"`
	SerialNumber    *string          `json:"serial_number"`
	Type            enum.VehicleType `json:"type"`
	Model           *string          `json:"model"`
	Amount          float64          `json:"amount"`
	StartDate       *time.Time       `json:"start_date"`
	ContractExpiry  *time.Time       `json:"contract_expiry"`
	EmployeeIqamaID *string          `json:"employee_iqama_id"`
}

// BulkImportVehicles inserts rows best-effort with per-row errors
func (s *VehicleService) BulkImportVehicles(ctx context.Context, rows []VehicleImportRow) (*BulkResult, error) {
	result := &BulkResult{Errors: []apperror.RowError{}}

	for i, row := range rows {
		if row.Number == "" || row.Name == "" {
			result.Errors = append(result.Errors, apperror.RowError{Index: i, Message: "Number and name are required"})
			continue
		}

		var employeeID *uuid.UUID
		if row.EmployeeIqamaID != nil && *row.EmployeeIqamaID != "" {
			employee, err := s.employeeRepo.GetByIqamaID(ctx, *row.EmployeeIqamaID)
			if err != nil {
				return nil, err
			}
			if employee == nil {
				result.Errors = append(result.Errors, apperror.RowError{Index: i, Message: "Employee with iqama ID " + *row.EmployeeIqamaID + " not found"})
				continue
			}
			employeeID = &employee.ID
		}

		_, err := s.CreateVehicle(ctx, &CreateVehicleInput{
			Number:         row.Number,
			Name:           row.Name,
			SerialNumber:   row.SerialNumber,
			Type:           row.Type,
			Model:          row.Model,
			Amount:         row.Amount,
			StartDate:      row.StartDate,
			ContractExpiry: row.ContractExpiry,
			EmployeeID:     employeeID,
		})
		if err != nil {
			result.Errors = append(result.Errors, apperror.RowError{Index: i, Message: apperror.GetAppError(err).Message})
			continue
		}
		result.Created++
	}

	return result, nil
}
