package service

import (
	"adboard/config"
	"adboard/dao"
	"adboard/models"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 每个测试一个独立的内存库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Users{},
		&models.Advertisement{},
		&models.Image{},
		&models.Comment{},
		&models.Reaction{},
		&models.UserStat{},
		&models.Preferences{},
		&models.GenerationJob{},
	)
	require.NoError(t, err)
	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		App: &config.App{Env: "test", Debug: true},
		Jwt: &config.Jwt{Secret: "test-secret"},
	}
}

func newStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		StatDAO:          dao.NewUserStatDAO(db),
		AdvertisementDAO: dao.NewAdvertisementDAO(db),
		ReactionDAO:      dao.NewReactionDAO(db),
		CommentDAO:       dao.NewComment(db),
	}
}

func newReactionService(db *gorm.DB) *ReactionService {
	return &ReactionService{
		DB:               db,
		ReactionDAO:      dao.NewReactionDAO(db),
		AdvertisementDAO: dao.NewAdvertisementDAO(db),
		StatsService:     newStatsService(db),
	}
}

func newAdvertisementService(db *gorm.DB) *AdvertisementService {
	return &AdvertisementService{
		DB:               db,
		AdvertisementDAO: dao.NewAdvertisementDAO(db),
		ImageDAO:         dao.NewImage(db),
		CommentDAO:       dao.NewComment(db),
		ReactionDAO:      dao.NewReactionDAO(db),
		StatsService:     newStatsService(db),
		ReactionService:  newReactionService(db),
	}
}

func newCommentService(db *gorm.DB) *CommentService {
	return &CommentService{
		CommentDAO:       dao.NewComment(db),
		AdvertisementDAO: dao.NewAdvertisementDAO(db),
		StatsService:     newStatsService(db),
	}
}

func newPreferenceService(db *gorm.DB) *PreferenceService {
	return &PreferenceService{
		PrefDAO: dao.NewPreferencesDAO(db),
		Config:  newTestConfig(),
	}
}
