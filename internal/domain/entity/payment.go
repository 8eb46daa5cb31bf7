package entity

import (
	"time"

	"github.com/fleetdesk/fleetdesk-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment is a receivable against one vehicle. The paid amount is never
// stored: installments are the ledger of record and PaidAmount is filled in
// from the sum of active installments at read time. The invariant
// PaidAmount <= TotalAmount is enforced on every write path.
type Payment struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	VehicleID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"vehicle_id"`
	TotalAmount float64        `gorm:"not null" json:"total_amount"`
	Date        time.Time      `gorm:"not null" json:"date"`
	Remarks     *string        `gorm:"type:text" json:"remarks,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// PaidAmount and Dues are derived from active installments, not persisted.
	PaidAmount float64 `gorm:"-" json:"paid_amount"`
	Dues       float64 `gorm:"-" json:"dues"`

	// Relationships
	Vehicle      *Vehicle      `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	Installments []Installment `gorm:"foreignKey:PaymentID" json:"installments,omitempty"`
}

// FillDerived sets PaidAmount and Dues from the summed installment amount.
func (p *Payment) FillDerived(paid float64) {
	p.PaidAmount = paid
	p.Dues = p.TotalAmount - paid
}

// DeletionPolicy for payments is soft delete; deleting a payment cascades a
// soft delete to its installments.
func (Payment) DeletionPolicy() enum.DeletionPolicy {
	return enum.DeletionPolicySoft
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
