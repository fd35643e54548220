package service

import (
	"adboard/dao"
	"adboard/models"
	"adboard/pkg/log"
	"adboard/pkg/snowflake"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IReactionService = (*ReactionService)(nil)

type IReactionService interface {
	SetReaction(ctx context.Context, userID uint64, advertisementID uint64, kind uint8) error
	ReactionState(ctx context.Context, userID uint64, advertisementID uint64) (liked bool, disliked bool, err error)
}

type ReactionService struct {
	DB               *gorm.DB
	ReactionDAO      *dao.ReactionDAO
	AdvertisementDAO *dao.AdvertisementDAO
	StatsService     IStatsService
	Redis            *redis.Client
}

// SetReaction 给公告点赞/点踩，重复点同一种则取消。
// 同一用户在一条公告上最多保留一种反应；行内计数缓存随事务同步更新。
// 未登录(userID=0)静默忽略，不报错。
func (s *ReactionService) SetReaction(ctx context.Context, userID uint64, advertisementID uint64, kind uint8) error {
	if userID == 0 {
		return nil
	}
	if kind != models.ReactionLike && kind != models.ReactionDislike {
		return errors.New("无效的反应类型")
	}

	exist, err := s.AdvertisementDAO.IsExist(ctx, "id = ?", advertisementID)
	if err != nil {
		return err
	}
	if !exist {
		return ErrAdvertisementNotFound
	}

	// 分布式锁,防止同一用户并发重复操作
	if s.Redis != nil {
		lockKey := fmt.Sprintf("lock:reaction:%d:%d", userID, advertisementID)
		lock, err := s.Redis.SetNX(ctx, lockKey, 1, 5*time.Second).Result()
		if err != nil || !lock {
			return errors.New("操作太频繁,请稍后重试")
		}
		defer s.Redis.Del(ctx, lockKey)
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var adv models.Advertisement
		if err := tx.Where("id = ?", advertisementID).First(&adv).Error; err != nil {
			return err
		}

		opposite := models.ReactionLike
		if kind == models.ReactionLike {
			opposite = models.ReactionDislike
		}

		var same models.Reaction
		if err := tx.Where("advertisement_id = ? AND user_id = ? AND kind = ?",
			advertisementID, userID, kind).Limit(1).Find(&same).Error; err != nil {
			return err
		}

		if same.ID != 0 {
			// 再点一次同种反应 = 取消
			if err := tx.Delete(&models.Reaction{}, same.ID).Error; err != nil {
				return err
			}
			addCounter(&adv, kind, -1)
		} else {
			reaction := models.Reaction{
				ID:              uint64(snowflake.GenID()),
				AdvertisementID: advertisementID,
				UserID:          userID,
				Kind:            kind,
				CreatedAt:       time.Now(),
			}
			if err := tx.Create(&reaction).Error; err != nil {
				return err
			}
			addCounter(&adv, kind, 1)

			// 换边: 删除相反的反应
			var opp models.Reaction
			if err := tx.Where("advertisement_id = ? AND user_id = ? AND kind = ?",
				advertisementID, userID, opposite).Limit(1).Find(&opp).Error; err != nil {
				return err
			}
			if opp.ID != 0 {
				if err := tx.Delete(&models.Reaction{}, opp.ID).Error; err != nil {
					return err
				}
				addCounter(&adv, opposite, -1)
			}
		}

		// 无论走哪个分支都落盘计数缓存
		return tx.Model(&models.Advertisement{}).
			Where("id = ?", advertisementID).
			Updates(map[string]any{
				"like_count":    adv.LikeCount,
				"dislike_count": adv.DislikeCount,
			}).Error
	})
	if err != nil {
		return err
	}

	// 统计重算尽力而为，失败不影响本次操作
	if err := s.StatsService.RecomputeReactions(ctx, userID); err != nil {
		log.L.Error("recompute reaction stats", zap.Uint64("user_id", userID), zap.Error(err))
	}
	return nil
}

// ReactionState 当前用户对公告的反应状态
func (s *ReactionService) ReactionState(ctx context.Context, userID uint64, advertisementID uint64) (bool, bool, error) {
	if userID == 0 {
		return false, false, nil
	}
	like, err := s.ReactionDAO.GetByAdvUser(ctx, advertisementID, userID, models.ReactionLike)
	if err != nil {
		return false, false, err
	}
	dislike, err := s.ReactionDAO.GetByAdvUser(ctx, advertisementID, userID, models.ReactionDislike)
	if err != nil {
		return false, false, err
	}
	return like != nil, dislike != nil, nil
}

// addCounter 修改行内计数缓存，下限为 0
func addCounter(adv *models.Advertisement, kind uint8, delta int) {
	if kind == models.ReactionLike {
		adv.LikeCount += delta
		if adv.LikeCount < 0 {
			adv.LikeCount = 0
		}
		return
	}
	adv.DislikeCount += delta
	if adv.DislikeCount < 0 {
		adv.DislikeCount = 0
	}
}
