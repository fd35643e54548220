package service

import (
	"adboard/models"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// 匿名用户无视查询参数，返回系统默认值
func TestResolvePageSizeAnonymous(t *testing.T) {
	db := newTestDB(t)
	svc := newPreferenceService(db)

	got := svc.ResolvePageSize(context.Background(), 0, "50")
	require.Equal(t, 10, got)

	var rows int64
	require.NoError(t, db.Model(&models.Preferences{}).Count(&rows).Error)
	require.Zero(t, rows)
}

// 带查询参数时用参数值并持久化到偏好表
func TestResolvePageSizeFromQueryPersists(t *testing.T) {
	db := newTestDB(t)
	svc := newPreferenceService(db)
	ctx := context.Background()

	got := svc.ResolvePageSize(ctx, 1, "25")
	require.Equal(t, 25, got)

	var pref models.Preferences
	require.NoError(t, db.Where("user_id = ?", 1).First(&pref).Error)
	require.Equal(t, 25, pref.PageSize)

	// 后续不带参数的请求读到持久化的值
	got = svc.ResolvePageSize(ctx, 1, "")
	require.Equal(t, 25, got)
}

// 无参数无偏好行时建默认行
func TestResolvePageSizeCreatesDefaultRow(t *testing.T) {
	db := newTestDB(t)
	svc := newPreferenceService(db)

	got := svc.ResolvePageSize(context.Background(), 2, "")
	require.Equal(t, 10, got)

	var pref models.Preferences
	require.NoError(t, db.Where("user_id = ?", 2).First(&pref).Error)
	require.Equal(t, 10, pref.PageSize)
	require.Equal(t, models.ThemeLight, pref.Theme)
}

// 非法参数按没传处理
func TestResolvePageSizeInvalidQuery(t *testing.T) {
	db := newTestDB(t)
	svc := newPreferenceService(db)

	require.Equal(t, 10, svc.ResolvePageSize(context.Background(), 3, "abc"))
	require.Equal(t, 10, svc.ResolvePageSize(context.Background(), 3, "-5"))
	require.Equal(t, 10, svc.ResolvePageSize(context.Background(), 3, "0"))
}

func TestToggleTheme(t *testing.T) {
	db := newTestDB(t)
	svc := newPreferenceService(db)
	ctx := context.Background()

	// 没有偏好行时首次切换建一行暗色
	pref, err := svc.ToggleTheme(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, models.ThemeDark, pref.Theme)

	pref, err = svc.ToggleTheme(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, models.ThemeLight, pref.Theme)

	pref, err = svc.ToggleTheme(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, models.ThemeDark, pref.Theme)
}

func TestUpdatePreferences(t *testing.T) {
	db := newTestDB(t)
	svc := newPreferenceService(db)
	ctx := context.Background()

	pref, err := svc.Update(ctx, 6, models.ThemeDark, 30)
	require.NoError(t, err)
	require.Equal(t, models.ThemeDark, pref.Theme)
	require.Equal(t, 30, pref.PageSize)

	_, err = svc.Update(ctx, 6, "neon", 30)
	require.Error(t, err)

	_, err = svc.Update(ctx, 6, models.ThemeLight, 0)
	require.Error(t, err)
}
