package dao

import (
	"adboard/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ReactionDAO struct {
	Repo[models.Reaction]
}

func NewReactionDAO(db *gorm.DB) *ReactionDAO {
	return &ReactionDAO{Repo: NewRepo[models.Reaction](db)}
}

// GetByAdvUser 查询指定用户对指定公告的某种反应记录，不存在返回 nil
func (d *ReactionDAO) GetByAdvUser(ctx context.Context, advertisementID, userID uint64, kind uint8) (*models.Reaction, error) {
	var item models.Reaction
	err := d.Db.WithContext(ctx).
		Where("advertisement_id = ? AND user_id = ? AND kind = ?", advertisementID, userID, kind).
		Limit(1).
		Find(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// CountByUserKind 某用户某种反应的总数
func (d *ReactionDAO) CountByUserKind(ctx context.Context, userID uint64, kind uint8) (int64, error) {
	return d.CountByWhere(ctx, "user_id = ? AND kind = ?", userID, kind)
}

// CountByAdvKind 某公告某种反应的总数
func (d *ReactionDAO) CountByAdvKind(ctx context.Context, advertisementID uint64, kind uint8) (int64, error) {
	return d.CountByWhere(ctx, "advertisement_id = ? AND kind = ?", advertisementID, kind)
}
