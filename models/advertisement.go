package models

import "time"

// Advertisement 公告/广告，站内的核心内容实体。
// like_count/dislike_count 是行内计数缓存，真实值以 reactions 表为准。
type Advertisement struct {
	ID           uint64    `gorm:"column:id;primary_key" json:"id"`
	UserID       uint64    `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id"`
	Title        string    `gorm:"column:title;type:varchar(255);not null;default:''" json:"title"`
	Content      string    `gorm:"column:content;type:text" json:"content"`
	LikeCount    int       `gorm:"column:like_count;not null;default:0" json:"like_count"`
	DislikeCount int       `gorm:"column:dislike_count;not null;default:0" json:"dislike_count"`
	CreatedAt    time.Time `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Advertisement) TableName() string {
	return "advertisements"
}
