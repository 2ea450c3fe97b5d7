package repo

import (
	"context"

	"github.com/gashtstore/admin/internal/models"
)

func (r *GormRepo) LogActivity(ctx context.Context, actionType, description string) error {
	entry := models.ActivityLog{
		ActionType:  actionType,
		Description: description,
	}
	return r.DB.WithContext(ctx).Create(&entry).Error
}

func (r *GormRepo) RecentActivity(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	var items []models.ActivityLog
	if err := r.DB.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
