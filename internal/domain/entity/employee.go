package entity

import (
	"time"

	"github.com/fleetdesk/fleetdesk-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Employee represents a staff member or agent. Employees are soft-deleted so
// that old payroll and assignment history stays auditable.
type Employee struct {
	ID                uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Name              string            `gorm:"size:255;not null" json:"name"`
	IqamaID           string            `gorm:"size:10;uniqueIndex;not null" json:"iqama_id"`
	Phone             *string           `gorm:"size:20" json:"phone,omitempty"`
	Type              enum.EmployeeType `gorm:"size:20;not null;default:'employee'" json:"type"`
	JoinDate          *time.Time        `json:"join_date,omitempty"`
	ImageURLs         pq.StringArray    `gorm:"type:text[]" json:"image_urls,omitempty"`
	TerminationReason *string           `gorm:"type:text" json:"termination_reason,omitempty"`
	TerminationDate   *time.Time        `json:"termination_date,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
	DeletedAt         gorm.DeletedAt    `gorm:"index" json:"deleted_at,omitempty"`

	// Relationships
	Vehicles []Vehicle `gorm:"foreignKey:EmployeeID" json:"-"`
	Bills    []Bill    `gorm:"foreignKey:EmployeeID" json:"-"`
}

// DeletionPolicy for employees is soft delete.
func (Employee) DeletionPolicy() enum.DeletionPolicy {
	return enum.DeletionPolicySoft
}

// BeforeCreate generates a UUID before creating a new employee
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}
