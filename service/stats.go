package service

import (
	"adboard/dao"
	"adboard/models"
	"context"
)

var _ IStatsService = (*StatsService)(nil)

// IStatsService 用户统计冗余表的维护入口。
// 计数一律用源表的实时 COUNT 重算后覆盖写入，创建和删除都触发，
// 不做增量加减，避免漏事件后的漂移。
type IStatsService interface {
	RecomputeAdvertisements(ctx context.Context, userID uint64) error
	RecomputeReactions(ctx context.Context, userID uint64) error
	RecomputeComments(ctx context.Context, userID uint64) error
	GetAll(ctx context.Context) ([]*models.UserStat, error)
	GetByUser(ctx context.Context, userID uint64) (*models.UserStat, error)
}

type StatsService struct {
	StatDAO          *dao.UserStatDAO
	AdvertisementDAO *dao.AdvertisementDAO
	ReactionDAO      *dao.ReactionDAO
	CommentDAO       *dao.Comment
}

// RecomputeAdvertisements 重算某用户的公告数并落表
func (s *StatsService) RecomputeAdvertisements(ctx context.Context, userID uint64) error {
	count, err := s.AdvertisementDAO.CountByAuthor(ctx, userID)
	if err != nil {
		return err
	}
	return s.StatDAO.UpsertAdvertisementCount(ctx, userID, int(count))
}

// RecomputeReactions 重算某用户给出的点赞/点踩数并落表
func (s *StatsService) RecomputeReactions(ctx context.Context, userID uint64) error {
	likeCount, err := s.ReactionDAO.CountByUserKind(ctx, userID, models.ReactionLike)
	if err != nil {
		return err
	}
	dislikeCount, err := s.ReactionDAO.CountByUserKind(ctx, userID, models.ReactionDislike)
	if err != nil {
		return err
	}
	return s.StatDAO.UpsertReactionCounts(ctx, userID, int(likeCount), int(dislikeCount))
}

// RecomputeComments 重算某用户的评论数并落表
func (s *StatsService) RecomputeComments(ctx context.Context, userID uint64) error {
	count, err := s.CommentDAO.CountByAuthor(ctx, userID)
	if err != nil {
		return err
	}
	return s.StatDAO.UpsertCommentCount(ctx, userID, int(count))
}

func (s *StatsService) GetAll(ctx context.Context) ([]*models.UserStat, error) {
	return s.StatDAO.GetAll(ctx)
}

func (s *StatsService) GetByUser(ctx context.Context, userID uint64) (*models.UserStat, error) {
	return s.StatDAO.GetByUserID(ctx, userID)
}
