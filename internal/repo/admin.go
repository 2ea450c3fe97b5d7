package repo

import (
	"context"

	"github.com/gashtstore/admin/internal/models"
)

// GetAdmin returns the single admin row. The schema does not enforce
// singularity, so the lowest id wins if more than one ever exists.
func (r *GormRepo) GetAdmin(ctx context.Context) (*models.AdminUser, error) {
	admin := models.AdminUser{}
	if err := r.DB.WithContext(ctx).Order("id ASC").First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *GormRepo) GetAdminByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	admin := models.AdminUser{}
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *GormRepo) SaveAdmin(ctx context.Context, admin *models.AdminUser) error {
	return r.DB.WithContext(ctx).Save(admin).Error
}

func (r *GormRepo) CountAdmins(ctx context.Context) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.AdminUser{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
