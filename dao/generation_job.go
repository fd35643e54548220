package dao

import (
	"adboard/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type GenerationJobDAO struct {
	Repo[models.GenerationJob]
}

func NewGenerationJobDAO(db *gorm.DB) *GenerationJobDAO {
	return &GenerationJobDAO{Repo: NewRepo[models.GenerationJob](db)}
}

// MarkRunning 任务开始执行
func (d *GenerationJobDAO) MarkRunning(ctx context.Context, jobID uint64) error {
	_, err := d.UpdateById(ctx, jobID, map[string]any{
		"status":     models.GenerationStatusRunning,
		"updated_at": time.Now(),
	})
	return err
}

// MarkDone 任务成功，记录生成文件
func (d *GenerationJobDAO) MarkDone(ctx context.Context, jobID uint64, fileKey string) error {
	_, err := d.UpdateById(ctx, jobID, map[string]any{
		"status":     models.GenerationStatusDone,
		"file_key":   fileKey,
		"updated_at": time.Now(),
	})
	return err
}

// MarkFailed 任务失败，记录错误详情
func (d *GenerationJobDAO) MarkFailed(ctx context.Context, jobID uint64, reason string) error {
	_, err := d.UpdateById(ctx, jobID, map[string]any{
		"status":     models.GenerationStatusFailed,
		"error":      reason,
		"updated_at": time.Now(),
	})
	return err
}
