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

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	Create(ctx context.Context, userID uint64, opt *types.CreateCommentRequest) (*models.Comment, error)
	Update(ctx context.Context, userID uint64, isAdmin bool, opt *types.UpdateCommentRequest) error
	Delete(ctx context.Context, userID uint64, commentID uint64) error
}

type CommentService struct {
	CommentDAO       *dao.Comment
	AdvertisementDAO *dao.AdvertisementDAO
	StatsService     IStatsService
}

// Create 发表评论，公告必须存在
func (s *CommentService) Create(ctx context.Context, userID uint64, opt *types.CreateCommentRequest) (*models.Comment, error) {
	content := strings.TrimSpace(opt.Content)
	if content == "" {
		return nil, errors.New("评论内容不能为空")
	}

	exist, err := s.AdvertisementDAO.IsExist(ctx, "id = ?", opt.AdvertisementID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, ErrAdvertisementNotFound
	}

	now := time.Now()
	comment := &models.Comment{
		ID:              uint64(snowflake.GenID()),
		AdvertisementID: opt.AdvertisementID,
		UserID:          userID,
		Content:         content,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		return nil, err
	}

	if err := s.StatsService.RecomputeComments(ctx, userID); err != nil {
		log.L.Error("recompute comment stats", zap.Uint64("user_id", userID), zap.Error(err))
	}
	return comment, nil
}

// Update 编辑评论，作者本人或管理员可操作
func (s *CommentService) Update(ctx context.Context, userID uint64, isAdmin bool, opt *types.UpdateCommentRequest) error {
	comment, err := s.CommentDAO.FindById(ctx, opt.CommentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	if comment.UserID != userID && !isAdmin {
		return ErrPermissionDenied
	}

	content := strings.TrimSpace(opt.Content)
	if content == "" {
		return errors.New("评论内容不能为空")
	}

	_, err = s.CommentDAO.UpdateById(ctx, comment.ID, map[string]any{
		"content":    content,
		"updated_at": time.Now(),
	})
	return err
}

// Delete 删除评论。非作者的删除请求静默忽略，不报错。
func (s *CommentService) Delete(ctx context.Context, userID uint64, commentID uint64) error {
	comment, err := s.CommentDAO.FindById(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	if comment.UserID != userID {
		return nil
	}

	if _, err := s.CommentDAO.DeleteByWhere(ctx, "id = ?", commentID); err != nil {
		return err
	}

	if err := s.StatsService.RecomputeComments(ctx, userID); err != nil {
		log.L.Error("recompute comment stats", zap.Uint64("user_id", userID), zap.Error(err))
	}
	return nil
}
