package entity

import (
	"time"

	"github.com/fleetdesk/fleetdesk-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Admin is a panel account. Usernames are stored lowercase and passwords as
// bcrypt hashes. Admins are hard-deleted; the last remaining account cannot
// be removed.
type Admin struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Username  string         `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      enum.AdminRole `gorm:"size:20;not null;default:'admin'" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// DeletionPolicy for admins is hard delete.
func (Admin) DeletionPolicy() enum.DeletionPolicy {
	return enum.DeletionPolicyHard
}

// BeforeCreate generates a UUID before creating a new admin
func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Admin model
func (Admin) TableName() string {
	return "admins"
}
