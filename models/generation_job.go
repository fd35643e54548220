package models

import "time"

const (
	GenerationStatusPending = "pending"
	GenerationStatusRunning = "running"
	GenerationStatusDone    = "done"
	GenerationStatusFailed  = "failed"
)

// GenerationJob 文生图任务。
// 结果显式区分成功(file_key)与失败(error)，不往文件名里塞错误文本。
type GenerationJob struct {
	ID              uint64    `gorm:"column:id;primary_key" json:"id"`
	AdvertisementID uint64    `gorm:"column:advertisement_id;not null;index:idx_advertisement_id" json:"advertisement_id"`
	UserID          uint64    `gorm:"column:user_id;not null" json:"user_id"`
	Prompt          string    `gorm:"column:prompt;type:text" json:"prompt"`
	Status          string    `gorm:"column:status;type:varchar(16);not null;default:'pending'" json:"status"`
	FileKey         string    `gorm:"column:file_key;type:varchar(255);not null;default:''" json:"file_key"`
	Error           string    `gorm:"column:error;type:text" json:"error,omitempty"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (GenerationJob) TableName() string {
	return "generation_jobs"
}
