package entity

import (
	"time"

	"github.com/fleetdesk/fleetdesk-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vehicle represents a fleet vehicle, optionally assigned to one employee.
// Vehicles are hard-deleted: once removed the record is gone for good.
type Vehicle struct {
	ID                uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	Number            string           `gorm:"size:50;uniqueIndex;not null" json:"number"`
	Name              string           `gorm:"size:255;not null" json:"name"`
	SerialNumber      *string          `gorm:"size:100" json:"serial_number,omitempty"`
	Type              enum.VehicleType `gorm:"size:20;not null;default:'private'" json:"type"`
	Model             *string          `gorm:"size:100" json:"model,omitempty"`
	Amount            float64          `gorm:"not null;default:0" json:"amount"`
	StartDate         *time.Time       `json:"start_date,omitempty"`
	ContractExpiry    *time.Time       `json:"contract_expiry,omitempty"`
	Description       *string          `gorm:"type:text" json:"description,omitempty"`
	EmployeeID        *uuid.UUID       `gorm:"type:uuid;index" json:"employee_id,omitempty"`
	TerminationReason *string          `gorm:"type:text" json:"termination_reason,omitempty"`
	TerminationDate   *time.Time       `json:"termination_date,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`

	// Relationships
	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Payments []Payment `gorm:"foreignKey:VehicleID" json:"-"`
}

// DeletionPolicy for vehicles is hard delete.
func (Vehicle) DeletionPolicy() enum.DeletionPolicy {
	return enum.DeletionPolicyHard
}

// BeforeCreate generates a UUID before creating a new vehicle
func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Vehicle model
func (Vehicle) TableName() string {
	return "vehicles"
}
