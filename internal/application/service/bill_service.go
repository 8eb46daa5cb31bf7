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

// BillService handles income/expense bill operations
type BillService struct {
	billRepo     repository.BillRepository
	employeeRepo repository.EmployeeRepository
}

// NewBillService creates a new bill service
func NewBillService(billRepo repository.BillRepository, employeeRepo repository.EmployeeRepository) *BillService {
	return &BillService{billRepo: billRepo, employeeRepo: employeeRepo}
}

// CreateBillInput represents the create bill input
type CreateBillInput struct {
	Type        enum.BillType
	Name        string
	TotalAmount float64
	PaidAmount  float64
	Date        time.Time
	EmployeeID  *uuid.UUID
}

// CreateBill creates a bill, enforcing paid <= total
func (s *BillService) CreateBill(ctx context.Context, input *CreateBillInput) (*entity.Bill, error) {
	if !input.Type.IsValid() {
		return nil, apperror.NewBadRequestError("Type must be income or expense")
	}
	if input.TotalAmount <= 0 {
		return nil, apperror.NewBadRequestError("Total amount must be greater than zero")
	}
	if input.PaidAmount < 0 {
		return nil, apperror.NewBadRequestError("Paid amount cannot be negative")
	}
	if input.PaidAmount > input.TotalAmount {
		return nil, apperror.NewBadRequestError("Paid amount cannot exceed total amount")
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

	if input.Date.IsZero() {
		input.Date = time.Now()
	}

	bill := &entity.Bill{
		Type:        input.Type,
		Name:        input.Name,
		TotalAmount: input.TotalAmount,
		PaidAmount:  input.PaidAmount,
		Date:        input.Date,
		EmployeeID:  input.EmployeeID,
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}

	bill.FillDerived()
	return bill, nil
}

// GetBill retrieves a bill by ID
func (s *BillService) GetBill(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// ListBills lists bills filtered by type, employee and date range
func (s *BillService) ListBills(ctx context.Context, filter *repository.BillFilter, params *pagination.Params) (*pagination.Result[entity.Bill], error) {
	bills, total, err := s.billRepo.List(ctx, filter, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewResult(bills, pagination.New(params.Page, params.PerPage, total)), nil
}

// UpdateBillInput represents the update bill input
type UpdateBillInput struct {
	ID          uuid.UUID
	Type        *enum.BillType
	Name        *string
	TotalAmount *float64
	PaidAmount  *float64
	Date        *time.Time
	EmployeeID  *uuid.UUID
}

// UpdateBill updates a bill, re-enforcing paid <= total on the final values
func (s *BillService) UpdateBill(ctx context.Context, input *UpdateBillInput) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}

	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, apperror.NewBadRequestError("Type must be income or expense")
		}
		bill.Type = *input.Type
	}
	if input.Name != nil {
		bill.Name = *input.Name
	}
	if input.TotalAmount != nil {
		if *input.TotalAmount <= 0 {
			return nil, apperror.NewBadRequestError("Total amount must be greater than zero")
		}
		bill.TotalAmount = *input.TotalAmount
	}
	if input.PaidAmount != nil {
		if *input.PaidAmount < 0 {
			return nil, apperror.NewBadRequestError("Paid amount cannot be negative")
		}
		bill.PaidAmount = *input.PaidAmount
	}
	if bill.PaidAmount > bill.TotalAmount {
		return nil, apperror.NewBadRequestError("Paid amount cannot exceed total amount")
	}
	if input.Date != nil {
		bill.Date = *input.Date
	}
	if input.EmployeeID != nil {
		employee, err := s.employeeRepo.GetByID(ctx, *input.EmployeeID)
		if err != nil {
			return nil, err
		}
		if employee == nil {
			return nil, apperror.NewNotFoundError("Employee")
		}
		bill.EmployeeID = input.EmployeeID
	}

	if err := s.billRepo.Update(ctx, bill); err != nil {
		return nil, err
	}

	bill.FillDerived()
	return bill, nil
}

// DeleteBill removes a bill permanently
func (s *BillService) DeleteBill(ctx context.Context, id uuid.UUID) error {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if bill == nil {
		return apperror.NewNotFoundError("Bill")
	}
	return s.billRepo.Delete(ctx, id)
}
