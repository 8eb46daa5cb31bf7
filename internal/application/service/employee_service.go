package service

import (
	"context"
	"regexp"
	"time"

	"github.com/fleetdesk/fleetdesk-api/internal/domain/entity"
	"github.com/fleetdesk/fleetdesk-api/internal/domain/enum"
	"github.com/fleetdesk/fleetdesk-api/internal/domain/repository"
	"github.com/fleetdesk/fleetdesk-api/pkg/apperror"
	"github.com/fleetdesk/fleetdesk-api/pkg/pagination"
	"github.com/google/uuid"
)

var (
	iqamaPattern = regexp.MustCompile(`^[0-9]{10}$`)
	phonePattern = regexp.MustCompile(`^\+966[0-9]{9}$`)
)

// EmployeeService handles employee-related operations
type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(employeeRepo repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

// CreateEmployeeInput represents the create employee input
type CreateEmployeeInput struct {
	Name      string
	IqamaID   string
	Phone     *string
	Type      enum.EmployeeType
	JoinDate  *time.Time
	ImageURLs []string
}

func validateEmployeeFormats(iqamaID string, phone *string) error {
	if !iqamaPattern.MatchString(iqamaID) {
		return apperror.NewBadRequestError("Iqama ID must be exactly 10 digits")
	}
	if phone != nil && *phone != "" && !phonePattern.MatchString(*phone) {
		return apperror.NewBadRequestError("Phone must be +966 followed by 9 digits")
	}
	return nil
}

// CreateEmployee creates a new employee
func (s *EmployeeService) CreateEmployee(ctx context.Context, input *CreateEmployeeInput) (*entity.Employee, error) {
	if input.Type == "" {
		input.Type = enum.EmployeeTypeEmployee
	}
	if !input.Type.IsValid() {
		return nil, apperror.NewBadRequestError("Type must be employee or agent")
	}
	if err := validateEmployeeFormats(input.IqamaID, input.Phone); err != nil {
		return nil, err
	}

	existing, err := s.employeeRepo.GetByIqamaID(ctx, input.IqamaID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Employee with this Iqama ID already exists")
	}

	employee := &entity.Employee{
		Name:      input.Name,
		IqamaID:   input.IqamaID,
		Phone:     input.Phone,
		Type:      input.Type,
		JoinDate:  input.JoinDate,
		ImageURLs: input.ImageURLs,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

// GetEmployee retrieves an employee by ID
func (s *EmployeeService) GetEmployee(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}
	return employee, nil
}

// ListEmployees lists employees newest-first
func (s *EmployeeService) ListEmployees(ctx context.Context, filter *repository.EmployeeFilter, params *pagination.Params) (*pagination.Result[entity.Employee], error) {
	employees, total, err := s.employeeRepo.List(ctx, filter, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewResult(employees, pagination.New(params.Page, params.PerPage, total)), nil
}

// UpdateEmployeeInput represents the update employee input
type UpdateEmployeeInput struct {
	ID        uuid.UUID
	Name      *string
	IqamaID   *string
	Phone     *string
	Type      *enum.EmployeeType
	JoinDate  *time.Time
	ImageURLs []string
}

// UpdateEmployee replaces the whitelisted employee fields
func (s *EmployeeService) UpdateEmployee(ctx context.Context, input *UpdateEmployeeInput) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}

	if input.IqamaID != nil && *input.IqamaID != employee.IqamaID {
		if !iqamaPattern.MatchString(*input.IqamaID) {
			return nil, apperror.NewBadRequestError("Iqama ID must be exactly 10 digits")
		}
		existing, err := s.employeeRepo.GetByIqamaID(ctx, *input.IqamaID)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != employee.ID {
			return nil, apperror.NewConflictError("Employee with this Iqama ID already exists")
		}
		employee.IqamaID = *input.IqamaID
	}
	if input.Phone != nil {
		if *input.Phone != "" && !phonePattern.MatchString(*input.Phone) {
			return nil, apperror.NewBadRequestError("Phone must be +966 followed by 9 digits")
		}
		employee.Phone = input.Phone
	}
	if input.Name != nil {
		employee.Name = *input.Name
	}
	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, apperror.NewBadRequestError("Type must be employee or agent")
		}
		employee.Type = *input.Type
	}
	if input.JoinDate != nil {
		employee.JoinDate = input.JoinDate
	}
	if input.ImageURLs != nil {
		employee.ImageURLs = input.ImageURLs
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

// DeleteEmployee soft-deletes an employee. Vehicle assignments are left for
// the caller to clear beforehand.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return apperror.NewNotFoundError("Employee")
	}
	return s.employeeRepo.Delete(ctx, id)
}

// TerminateEmployee records the termination reason and date, then
// soft-deletes the employee.
func (s *EmployeeService) TerminateEmployee(ctx context.Context, id uuid.UUID, reason string, date time.Time) error {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return apperror.NewNotFoundError("Employee")
	}

	employee.TerminationReason = &reason
	employee.TerminationDate = &date
	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return err
	}

	return s.employeeRepo.Delete(ctx, id)
}

// EmployeeImportRow is one row of a bulk employee upload
type EmployeeImportRow struct {
	Name     string            `json:"name"`
	IqamaID  string            `json:"iqama_id"`
	Phone    *string           `json:"phone"`
	Type     enum.EmployeeType `json:"type"`
	JoinDate *time.Time        `json:"join_date"`
}

// BulkResult reports the outcome of a best-effort batch insert
type BulkResult struct {
	Created int                 `json:"created"`
	Errors  []apperror.RowError `json:"errors"`
}

// BulkImportEmployees inserts rows best-effort: failures are collected per
// row and processing continues with the rest.
func (s *EmployeeService) BulkImportEmployees(ctx context.Context, rows []EmployeeImportRow) (*BulkResult, error) {
	result := &BulkResult{Errors: []apperror.RowError{}}

	for i, row := range rows {
		if row.Name == "" {
			result.Errors = append(result.Errors, apperror.RowError{Index: i, Message: "Name is required"})
			continue
		}
		_, err := s.CreateEmployee(ctx, &CreateEmployeeInput{
			Name:     row.Name,
			IqamaID:  row.IqamaID,
			Phone:    row.Phone,
			Type:     row.Type,
			JoinDate: row.JoinDate,
		})
		if err != nil {
			result.Errors = append(result.Errors, apperror.RowError{Index: i, Message: apperror.GetAppError(err).Message})
			continue
		}
		result.Created++
	}

	return result, nil
}
