package dao

import (
	"adboard/models"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserStatDAO struct {
	Repo[models.UserStat]
}

func NewUserStatDAO(db *gorm.DB) *UserStatDAO {
	return &UserStatDAO{
		Repo: NewRepo[models.UserStat](db),
	}
}

// GetByUserID 根据用户ID获取统计，不存在返回 nil
func (d *UserStatDAO) GetByUserID(ctx context.Context, userID uint64) (*models.UserStat, error) {
	var stats models.UserStat
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&stats).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetAll 全部用户统计
func (d *UserStatDAO) GetAll(ctx context.Context) ([]*models.UserStat, error) {
	var stats []*models.UserStat
	err := d.Db.WithContext(ctx).Order("user_id").Find(&stats).Error
	return stats, err
}

// upsert 不存在则插入，存在则只覆盖指定列
func (d *UserStatDAO) upsert(ctx context.Context, stats *models.UserStat, columns map[string]any) error {
	columns["updated_at"] = time.Now()
	return d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(columns),
		}).
		Create(stats).Error
}

// UpsertAdvertisementCount 覆盖写入公告计数
func (d *UserStatDAO) UpsertAdvertisementCount(ctx context.Context, userID uint64, count int) error {
	now := time.Now()
	return d.upsert(ctx, &models.UserStat{
		UserID:             userID,
		AdvertisementCount: count,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, map[string]any{"advertisement_count": count})
}

// UpsertReactionCounts 覆盖写入点赞/点踩计数
func (d *UserStatDAO) UpsertReactionCounts(ctx context.Context, userID uint64, likeCount, dislikeCount int) error {
	now := time.Now()
	return d.upsert(ctx, &models.UserStat{
		UserID:       userID,
		LikeCount:    likeCount,
		DislikeCount: dislikeCount,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, map[string]any{"like_count": likeCount, "dislike_count": dislikeCount})
}

// UpsertCommentCount 覆盖写入评论计数
func (d *UserStatDAO) UpsertCommentCount(ctx context.Context, userID uint64, count int) error {
	now := time.Now()
	return d.upsert(ctx, &models.UserStat{
		UserID:       userID,
		CommentCount: count,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, map[string]any{"comment_count": count})
}
