package entity

import (
	"time"

	"github.com/fleetdesk/fleetdesk-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bill is an income or expense entry, optionally attributed to an employee
// acting as agent. Bills are hard-deleted.
type Bill struct {
	ID          uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	Type        enum.BillType `gorm:"size:20;not null" json:"type"`
	Name        string        `gorm:"size:255;not null" json:"name"`
	TotalAmount float64       `gorm:"not null" json:"total_amount"`
	PaidAmount  float64       `gorm:"not null;default:0" json:"paid_amount"`
	Date        time.Time     `gorm:"not null" json:"date"`
	EmployeeID  *uuid.UUID    `gorm:"type:uuid;index" json:"employee_id,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// Dues is derived at read time, never stored.
	Dues float64 `gorm:"-" json:"dues"`

	// Relationships
	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

// FillDerived computes the outstanding dues on the bill.
func (b *Bill) FillDerived() {
	b.Dues = b.TotalAmount - b.PaidAmount
}

// DeletionPolicy for bills is hard delete.
func (Bill) DeletionPolicy() enum.DeletionPolicy {
	return enum.DeletionPolicyHard
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}
