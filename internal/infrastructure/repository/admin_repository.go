package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/fleetdesk/fleetdesk-api/internal/domain/entity"
	domainRepo "github.com/fleetdesk/fleetdesk-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *gorm.DB) domainRepo.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	admin.Username = strings.ToLower(admin.Username)
	return translateDuplicate(r.db.WithContext(ctx).Create(admin).Error,
		"Admin with this username already exists")
}

func (r *adminRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	var admin entity.Admin
	err := r.db.WithContext(ctx).First(&admin, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &admin, err
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	var admin entity.Admin
	err := r.db.WithContext(ctx).First(&admin, "username = ?", strings.ToLower(username)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &admin, err
}

func (r *adminRepository) Update(ctx context.Context, admin *entity.Admin) error {
	admin.Username = strings.ToLower(admin.Username)
	return translateDuplicate(r.db.WithContext(ctx).Save(admin).Error,
		"Admin with this username already exists")
}

func (r *adminRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Admin{}, "id = ?", id).Error
}

func (r *adminRepository) List(ctx context.Context) ([]entity.Admin, error) {
	var admins []entity.Admin
	err := r.db.WithContext(ctx).Order("username ASC").Find(&admins).Error
	return admins, err
}

func (r *adminRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Admin{}).Count(&count).Error
	return count, err
}
