package service

import (
	"adboard/models"
	"adboard/types"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateCommentRequiresAdvertisement(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)

	_, err := svc.Create(context.Background(), 2, &types.CreateCommentRequest{
		AdvertisementID: 12345,
		Content:         "还在吗",
	})
	require.ErrorIs(t, err, ErrAdvertisementNotFound)
}

func TestCreateCommentRecomputesStats(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	ctx := context.Background()

	adv := seedAdvertisement(t, db, 1)

	_, err := svc.Create(ctx, 2, &types.CreateCommentRequest{
		AdvertisementID: adv.ID,
		Content:         "第一条评论",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, 2, &types.CreateCommentRequest{
		AdvertisementID: adv.ID,
		Content:         "第二条评论",
	})
	require.NoError(t, err)

	var stat models.UserStat
	require.NoError(t, db.Where("user_id = ?", 2).First(&stat).Error)
	require.Equal(t, 2, stat.CommentCount)
}

// 非作者的删除请求静默忽略，评论保留
func TestDeleteCommentByNonAuthorIsNoop(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	ctx := context.Background()

	adv := seedAdvertisement(t, db, 1)
	comment, err := svc.Create(ctx, 2, &types.CreateCommentRequest{
		AdvertisementID: adv.ID,
		Content:         "想要",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, 3, comment.ID))

	var rows int64
	require.NoError(t, db.Model(&models.Comment{}).Where("id = ?", comment.ID).Count(&rows).Error)
	require.EqualValues(t, 1, rows)
}

func TestDeleteCommentByAuthor(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	ctx := context.Background()

	adv := seedAdvertisement(t, db, 1)
	comment, err := svc.Create(ctx, 2, &types.CreateCommentRequest{
		AdvertisementID: adv.ID,
		Content:         "想要",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, 2, comment.ID))

	var rows int64
	require.NoError(t, db.Model(&models.Comment{}).Where("id = ?", comment.ID).Count(&rows).Error)
	require.Zero(t, rows)

	var stat models.UserStat
	require.NoError(t, db.Where("user_id = ?", 2).First(&stat).Error)
	require.Equal(t, 0, stat.CommentCount)
}

func TestDeleteCommentNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)

	err := svc.Delete(context.Background(), 2, 98765)
	require.ErrorIs(t, err, ErrCommentNotFound)
}

func TestUpdateCommentAuthorization(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	ctx := context.Background()

	adv := seedAdvertisement(t, db, 1)
	comment, err := svc.Create(ctx, 2, &types.CreateCommentRequest{
		AdvertisementID: adv.ID,
		Content:         "原始内容",
	})
	require.NoError(t, err)

	// 其他人不能改
	err = svc.Update(ctx, 3, false, &types.UpdateCommentRequest{
		CommentID: comment.ID,
		Content:   "篡改",
	})
	require.ErrorIs(t, err, ErrPermissionDenied)

	// 管理员可以改
	err = svc.Update(ctx, 3, true, &types.UpdateCommentRequest{
		CommentID: comment.ID,
		Content:   "管理员修订",
	})
	require.NoError(t, err)

	var got models.Comment
	require.NoError(t, db.First(&got, comment.ID).Error)
	require.Equal(t, "管理员修订", got.Content)
}
