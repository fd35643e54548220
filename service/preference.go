package service

import (
	"adboard/config"
	"adboard/dao"
	"adboard/models"
	"adboard/pkg/log"
	"adboard/pkg/snowflake"
	"context"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"
)

var _ IPreferenceService = (*PreferenceService)(nil)

type IPreferenceService interface {
	ResolvePageSize(ctx context.Context, userID uint64, raw string) int
	GetOrCreate(ctx context.Context, userID uint64) (*models.Preferences, error)
	Update(ctx context.Context, userID uint64, theme string, pageSize int) (*models.Preferences, error)
	ToggleTheme(ctx context.Context, userID uint64) (*models.Preferences, error)
}

type PreferenceService struct {
	PrefDAO *dao.PreferencesDAO
	Config  *config.Config
}

// ResolvePageSize 确定本次请求的分页大小。
// 优先级: 查询参数 > 用户已存偏好 > 系统默认值。
// 未登录用户忽略查询参数和偏好，一律用默认值。
// 持久化失败只记日志，不影响返回值。
func (s *PreferenceService) ResolvePageSize(ctx context.Context, userID uint64, raw string) int {
	def := s.Config.App.PageSizeDefault()
	if userID == 0 {
		return def
	}

	cnt := 0
	if raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			cnt = v
		}
	}

	if cnt == 0 {
		pref, err := s.PrefDAO.GetByUserID(ctx, userID)
		if err != nil {
			log.L.Error("read preferences", zap.Uint64("user_id", userID), zap.Error(err))
			return def
		}
		if pref == nil {
			if err := s.PrefDAO.Create(ctx, s.defaultRow(userID, def)); err != nil {
				log.L.Error("create preferences", zap.Uint64("user_id", userID), zap.Error(err))
			}
			return def
		}
		return pref.PageSize
	}

	affected, err := s.PrefDAO.UpdatePageSize(ctx, userID, cnt)
	if err != nil {
		log.L.Error("update page size", zap.Uint64("user_id", userID), zap.Error(err))
		return cnt
	}
	if affected == 0 {
		row := s.defaultRow(userID, cnt)
		if err := s.PrefDAO.Create(ctx, row); err != nil {
			log.L.Error("create preferences", zap.Uint64("user_id", userID), zap.Error(err))
		}
	}
	return cnt
}

// GetOrCreate 读取用户偏好，没有就建一行默认值
func (s *PreferenceService) GetOrCreate(ctx context.Context, userID uint64) (*models.Preferences, error) {
	pref, err := s.PrefDAO.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pref != nil {
		return pref, nil
	}

	row := s.defaultRow(userID, s.Config.App.PageSizeDefault())
	if err := s.PrefDAO.Create(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

// Update 设置页保存主题和分页大小
func (s *PreferenceService) Update(ctx context.Context, userID uint64, theme string, pageSize int) (*models.Preferences, error) {
	if theme != models.ThemeLight && theme != models.ThemeDark {
		return nil, errors.New("不支持的主题")
	}
	if pageSize <= 0 {
		return nil, errors.New("分页大小必须为正数")
	}

	pref, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	_, err = s.PrefDAO.UpdateById(ctx, pref.ID, map[string]any{
		"theme":      theme,
		"page_size":  pageSize,
		"updated_at": time.Now(),
	})
	if err != nil {
		return nil, err
	}
	pref.Theme = theme
	pref.PageSize = pageSize
	return pref, nil
}

// ToggleTheme 明暗主题互换；没有偏好行时首次切换建一行暗色
func (s *PreferenceService) ToggleTheme(ctx context.Context, userID uint64) (*models.Preferences, error) {
	pref, err := s.PrefDAO.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pref == nil {
		row := s.defaultRow(userID, s.Config.App.PageSizeDefault())
		row.Theme = models.ThemeDark
		if err := s.PrefDAO.Create(ctx, row); err != nil {
			return nil, err
		}
		return row, nil
	}

	next := models.ThemeDark
	if pref.Theme == models.ThemeDark {
		next = models.ThemeLight
	}
	if err := s.PrefDAO.UpdateTheme(ctx, userID, next); err != nil {
		return nil, err
	}
	pref.Theme = next
	return pref, nil
}

func (s *PreferenceService) defaultRow(userID uint64, pageSize int) *models.Preferences {
	now := time.Now()
	return &models.Preferences{
		ID:        uint64(snowflake.GenID()),
		UserID:    userID,
		Theme:     models.ThemeLight,
		PageSize:  pageSize,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
