package service

import (
	"adboard/dao"
	"adboard/models"
	"adboard/pkg/log"
	"adboard/pkg/snowflake"
	"adboard/types"
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IAdvertisementService = (*AdvertisementService)(nil)

type IAdvertisementService interface {
	Create(ctx context.Context, userID uint64, opt *types.CreateAdvertisementRequest) (*models.Advertisement, error)
	Update(ctx context.Context, userID uint64, isAdmin bool, opt *types.UpdateAdvertisementRequest) error
	Delete(ctx context.Context, userID uint64, advertisementID uint64) error
	Detail(ctx context.Context, viewerID uint64, advertisementID uint64) (*types.AdvertisementDetail, error)
	List(ctx context.Context, authorID uint64, page, pageSize int) (*types.ListAdvertisementsResponse, error)
}

type AdvertisementService struct {
	DB               *gorm.DB
	AdvertisementDAO *dao.AdvertisementDAO
	ImageDAO         *dao.Image
	CommentDAO       *dao.Comment
	ReactionDAO      *dao.ReactionDAO
	StatsService     IStatsService
	ReactionService  IReactionService
}

// Create 发布公告
func (s *AdvertisementService) Create(ctx context.Context, userID uint64, opt *types.CreateAdvertisementRequest) (*models.Advertisement, error) {
	title := strings.TrimSpace(opt.Title)
	if title == "" {
		return nil, errors.New("标题不能为空")
	}

	now := time.Now()
	adv := &models.Advertisement{
		ID:        uint64(snowflake.GenID()),
		UserID:    userID,
		Title:     title,
		Content:   opt.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.AdvertisementDAO.Create(ctx, adv); err != nil {
		return nil, err
	}

	if err := s.StatsService.RecomputeAdvertisements(ctx, userID); err != nil {
		log.L.Error("recompute advertisement stats", zap.Uint64("user_id", userID), zap.Error(err))
	}
	return adv, nil
}

// Update 编辑公告，作者本人或管理员可操作
func (s *AdvertisementService) Update(ctx context.Context, userID uint64, isAdmin bool, opt *types.UpdateAdvertisementRequest) error {
	adv, err := s.AdvertisementDAO.FindById(ctx, opt.AdvertisementID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAdvertisementNotFound
		}
		return err
	}

	if adv.UserID != userID && !isAdmin {
		return ErrPermissionDenied
	}

	title := strings.TrimSpace(opt.Title)
	if title == "" {
		return errors.New("标题不能为空")
	}

	_, err = s.AdvertisementDAO.UpdateById(ctx, adv.ID, map[string]any{
		"title":      title,
		"content":    opt.Content,
		"updated_at": time.Now(),
	})
	return err
}

// Delete 删除公告及其图片、评论、反应。只有作者本人可删，管理员也不行。
// 关联行删除后重算所有受影响用户的统计。
func (s *AdvertisementService) Delete(ctx context.Context, userID uint64, advertisementID uint64) error {
	adv, err := s.AdvertisementDAO.FindById(ctx, advertisementID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAdvertisementNotFound
		}
		return err
	}
	if adv.UserID != userID {
		return ErrOnlyAuthorCanDelete
	}

	// 先记下受影响的用户，行删掉后就查不到了
	var commentAuthors []uint64
	var reactionUsers []uint64

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Comment{}).
			Where("advertisement_id = ?", advertisementID).
			Distinct("user_id").
			Pluck("user_id", &commentAuthors).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Reaction{}).
			Where("advertisement_id = ?", advertisementID).
			Distinct("user_id").
			Pluck("user_id", &reactionUsers).Error; err != nil {
			return err
		}

		if err := tx.Where("advertisement_id = ?", advertisementID).
			Delete(&models.Image{}).Error; err != nil {
			return err
		}
		if err := tx.Where("advertisement_id = ?", advertisementID).
			Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("advertisement_id = ?", advertisementID).
			Delete(&models.Reaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Advertisement{}, advertisementID).Error
	})
	if err != nil {
		return err
	}

	if err := s.StatsService.RecomputeAdvertisements(ctx, userID); err != nil {
		log.L.Error("recompute advertisement stats", zap.Uint64("user_id", userID), zap.Error(err))
	}
	for _, uid := range commentAuthors {
		if err := s.StatsService.RecomputeComments(ctx, uid); err != nil {
			log.L.Error("recompute comment stats", zap.Uint64("user_id", uid), zap.Error(err))
		}
	}
	for _, uid := range reactionUsers {
		if err := s.StatsService.RecomputeReactions(ctx, uid); err != nil {
			log.L.Error("recompute reaction stats", zap.Uint64("user_id", uid), zap.Error(err))
		}
	}
	return nil
}

// Detail 公告详情：图片、评论和当前用户的反应状态
func (s *AdvertisementService) Detail(ctx context.Context, viewerID uint64, advertisementID uint64) (*types.AdvertisementDetail, error) {
	adv, err := s.AdvertisementDAO.FindById(ctx, advertisementID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdvertisementNotFound
		}
		return nil, err
	}

	images, err := s.ImageDAO.FindByAdvertisement(ctx, advertisementID)
	if err != nil {
		return nil, err
	}
	comments, err := s.CommentDAO.FindByAdvertisement(ctx, advertisementID)
	if err != nil {
		return nil, err
	}
	liked, disliked, err := s.ReactionService.ReactionState(ctx, viewerID, advertisementID)
	if err != nil {
		return nil, err
	}

	return &types.AdvertisementDetail{
		Advertisement: adv,
		Images:        images,
		Comments:      comments,
		Liked:         liked,
		Disliked:      disliked,
	}, nil
}

// List 分页列表，authorID 为 0 时返回全部
func (s *AdvertisementService) List(ctx context.Context, authorID uint64, page, pageSize int) (*types.ListAdvertisementsResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	ads, total, err := s.AdvertisementDAO.List(ctx, authorID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]*types.AdvertisementItem, 0, len(ads))
	for _, adv := range ads {
		images, err := s.ImageDAO.FindByAdvertisement(ctx, adv.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, &types.AdvertisementItem{
			Advertisement: adv,
			Images:        images,
		})
	}

	return &types.ListAdvertisementsResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
