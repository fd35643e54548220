package models

import "time"

// Comment 公告下的评论
type Comment struct {
	ID              uint64    `gorm:"column:id;primaryKey" json:"id"`
	AdvertisementID uint64    `gorm:"column:advertisement_id;not null;index:idx_advertisement_id" json:"advertisement_id"`
	UserID          uint64    `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id"`
	Content         string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}
