package dao

import (
	"adboard/models"
	"context"

	"gorm.io/gorm"
)

type AdvertisementDAO struct {
	Repo[models.Advertisement]
}

func NewAdvertisementDAO(db *gorm.DB) *AdvertisementDAO {
	return &AdvertisementDAO{Repo: NewRepo[models.Advertisement](db)}
}

// List 列表查询，authorID 为 0 时不按作者过滤，按 id 倒序
func (d *AdvertisementDAO) List(ctx context.Context, authorID uint64, limit, offset int) ([]*models.Advertisement, int64, error) {
	query := d.Db.WithContext(ctx).Model(&models.Advertisement{})
	if authorID > 0 {
		query = query.Where("user_id = ?", authorID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ads []*models.Advertisement
	err := query.
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&ads).Error
	return ads, total, err
}

// CountByAuthor 某作者的公告总数
func (d *AdvertisementDAO) CountByAuthor(ctx context.Context, userID uint64) (int64, error) {
	return d.CountByWhere(ctx, "user_id = ?", userID)
}

// UpdateCounters 覆盖写入行内的点赞/点踩计数缓存
func (d *AdvertisementDAO) UpdateCounters(ctx context.Context, advertisementID uint64, likeCount, dislikeCount int) error {
	return d.Db.WithContext(ctx).
		Model(&models.Advertisement{}).
		Where("id = ?", advertisementID).
		Updates(map[string]any{
			"like_count":    likeCount,
			"dislike_count": dislikeCount,
		}).Error
}
