package service

import (
	"adboard/models"
	"adboard/types"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateAdvertisementValidatesTitle(t *testing.T) {
	db := newTestDB(t)
	svc := newAdvertisementService(db)

	_, err := svc.Create(context.Background(), 1, &types.CreateAdvertisementRequest{Title: "   "})
	require.Error(t, err)
}

func TestCreateAdvertisementRecomputesStats(t *testing.T) {
	db := newTestDB(t)
	svc := newAdvertisementService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, &types.CreateAdvertisementRequest{Title: "出手一台旧显示器"})
	require.NoError(t, err)

	var stat models.UserStat
	require.NoError(t, db.Where("user_id = ?", 1).First(&stat).Error)
	require.Equal(t, 1, stat.AdvertisementCount)
}

func TestUpdateAdvertisementAuthorization(t *testing.T) {
	db := newTestDB(t)
	svc := newAdvertisementService(db)
	ctx := context.Background()

	adv := seedAdvertisement(t, db, 1)

	// 非作者非管理员
	err := svc.Update(ctx, 2, false, &types.UpdateAdvertisementRequest{
		AdvertisementID: adv.ID,
		Title:           "改标题",
	})
	require.ErrorIs(t, err, ErrPermissionDenied)

	// 管理员放行
	err = svc.Update(ctx, 2, true, &types.UpdateAdvertisementRequest{
		AdvertisementID: adv.ID,
		Title:           "管理员改的标题",
	})
	require.NoError(t, err)

	var got models.Advertisement
	require.NoError(t, db.First(&got, adv.ID).Error)
	require.Equal(t, "管理员改的标题", got.Title)
}

func TestUpdateAdvertisementNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newAdvertisementService(db)

	err := svc.Update(context.Background(), 1, true, &types.UpdateAdvertisementRequest{
		AdvertisementID: 424242,
		Title:           "不存在",
	})
	require.ErrorIs(t, err, ErrAdvertisementNotFound)
}

// 删除只认作者本人，管理员也不行
func TestDeleteAdvertisementOnlyAuthor(t *testing.T) {
	db := newTestDB(t)
	svc := newAdvertisementService(db)
	ctx := context.Background()

	adv := seedAdvertisement(t, db, 1)

	err := svc.Delete(ctx, 2, adv.ID)
	require.ErrorIs(t, err, ErrOnlyAuthorCanDelete)

	require.NoError(t, svc.Delete(ctx, 1, adv.ID))
	err = svc.Delete(ctx, 1, adv.ID)
	require.ErrorIs(t, err, ErrAdvertisementNotFound)
}

// 删除级联清理评论和反应，并重算所有受影响用户的统计
func TestDeleteAdvertisementCascades(t *testing.T) {
	db := newTestDB(t)
	advSvc := newAdvertisementService(db)
	commentSvc := newCommentService(db)
	reactionSvc := newReactionService(db)
	ctx := context.Background()

	adv := seedAdvertisement(t, db, 1)

	_, err := commentSvc.Create(ctx, 2, &types.CreateCommentRequest{
		AdvertisementID: adv.ID,
		Content:         "有意",
	})
	require.NoError(t, err)
	require.NoError(t, reactionSvc.SetReaction(ctx, 3, adv.ID, models.ReactionLike))

	require.NoError(t, advSvc.Delete(ctx, 1, adv.ID))

	var comments, reactions, images int64
	require.NoError(t, db.Model(&models.Comment{}).Where("advertisement_id = ?", adv.ID).Count(&comments).Error)
	require.NoError(t, db.Model(&models.Reaction{}).Where("advertisement_id = ?", adv.ID).Count(&reactions).Error)
	require.NoError(t, db.Model(&models.Image{}).Where("advertisement_id = ?", adv.ID).Count(&images).Error)
	require.Zero(t, comments)
	require.Zero(t, reactions)
	require.Zero(t, images)

	var commentStat models.UserStat
	require.NoError(t, db.Where("user_id = ?", 2).First(&commentStat).Error)
	require.Equal(t, 0, commentStat.CommentCount)

	var reactionStat models.UserStat
	require.NoError(t, db.Where("user_id = ?", 3).First(&reactionStat).Error)
	require.Equal(t, 0, reactionStat.LikeCount)
}

func TestAdvertisementDetail(t *testing.T) {
	db := newTestDB(t)
	advSvc := newAdvertisementService(db)
	commentSvc := newCommentService(db)
	reactionSvc := newReactionService(db)
	ctx := context.Background()

	adv := seedAdvertisement(t, db, 1)
	_, err := commentSvc.Create(ctx, 2, &types.CreateCommentRequest{
		AdvertisementID: adv.ID,
		Content:         "问个价",
	})
	require.NoError(t, err)
	require.NoError(t, reactionSvc.SetReaction(ctx, 2, adv.ID, models.ReactionLike))

	detail, err := advSvc.Detail(ctx, 2, adv.ID)
	require.NoError(t, err)
	require.Equal(t, adv.ID, detail.Advertisement.ID)
	require.Len(t, detail.Comments, 1)
	require.True(t, detail.Liked)
	require.False(t, detail.Disliked)

	_, err = advSvc.Detail(ctx, 0, 131313)
	require.ErrorIs(t, err, ErrAdvertisementNotFound)
}

func TestAdvertisementListPagination(t *testing.T) {
	db := newTestDB(t)
	svc := newAdvertisementService(db)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		_, err := svc.Create(ctx, 1, &types.CreateAdvertisementRequest{Title: "批量公告"})
		require.NoError(t, err)
	}

	resp, err := svc.List(ctx, 0, 1, 3)
	require.NoError(t, err)
	require.Len(t, resp.Items, 3)
	require.EqualValues(t, 7, resp.Total)
	require.Equal(t, 1, resp.Page)
	require.Equal(t, 3, resp.PageSize)

	resp, err = svc.List(ctx, 0, 3, 3)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)

	// 按作者过滤
	resp, err = svc.List(ctx, 99, 1, 3)
	require.NoError(t, err)
	require.Empty(t, resp.Items)
	require.Zero(t, resp.Total)
}
