package entity

import (
	"time"

	"github.com/fleetdesk/fleetdesk-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Installment is one ledger entry against a payment. The sum of a payment's
// active installments is its paid amount.
type Installment struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	PaymentID uuid.UUID      `gorm:"type:uuid;not null;index" json:"payment_id"`
	Amount    float64        `gorm:"not null" json:"amount"`
	Date      time.Time      `gorm:"not null" json:"date"`
	Remarks   *string        `gorm:"type:text" json:"remarks,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// Relationships
	Payment *Payment `gorm:"foreignKey:PaymentID" json:"-"`
}

// DeletionPolicy for installments is soft delete.
func (Installment) DeletionPolicy() enum.DeletionPolicy {
	return enum.DeletionPolicySoft
}

// BeforeCreate generates a UUID before creating a new installment
func (i *Installment) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Installment model
func (Installment) TableName() string {
	return "installments"
}
