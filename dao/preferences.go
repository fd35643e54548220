package dao

import (
	"adboard/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PreferencesDAO struct {
	Repo[models.Preferences]
}

func NewPreferencesDAO(db *gorm.DB) *PreferencesDAO {
	return &PreferencesDAO{Repo: NewRepo[models.Preferences](db)}
}

// GetByUserID 根据用户ID获取偏好，不存在返回 nil
func (d *PreferencesDAO) GetByUserID(ctx context.Context, userID uint64) (*models.Preferences, error) {
	var pref models.Preferences
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// UpdatePageSize 更新已有偏好行的分页大小，返回影响行数
func (d *PreferencesDAO) UpdatePageSize(ctx context.Context, userID uint64, pageSize int) (int64, error) {
	result := d.Db.WithContext(ctx).
		Model(&models.Preferences{}).
		Where("user_id = ?", userID).
		Update("page_size", pageSize)
	return result.RowsAffected, result.Error
}

// UpdateTheme 更新主题
func (d *PreferencesDAO) UpdateTheme(ctx context.Context, userID uint64, theme string) error {
	return d.Db.WithContext(ctx).
		Model(&models.Preferences{}).
		Where("user_id = ?", userID).
		Update("theme", theme).Error
}
