package dao

import (
	"adboard/models"
	"context"

	"gorm.io/gorm"
)

type Comment struct {
	Repo[models.Comment]
}

func NewComment(db *gorm.DB) *Comment {
	return &Comment{
		Repo: NewRepo[models.Comment](db),
	}
}

// FindByAdvertisement 某公告下的评论，按时间正序
func (d *Comment) FindByAdvertisement(ctx context.Context, advertisementID uint64) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("advertisement_id = ?", advertisementID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// CountByAuthor 某作者的评论总数
func (d *Comment) CountByAuthor(ctx context.Context, userID uint64) (int64, error) {
	return d.CountByWhere(ctx, "user_id = ?", userID)
}
