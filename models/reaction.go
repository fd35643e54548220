package models

import "time"

const (
	ReactionDislike uint8 = 0
	ReactionLike    uint8 = 1
)

// Reaction 点赞/点踩记录
// 对应表 reactions
// 业务约束: 同一 (user_id, advertisement_id) 每种 kind 最多一行，
// 由 ReactionService 在事务内保证，不依赖数据库唯一键。
type Reaction struct {
	ID              uint64    `gorm:"column:id;primary_key" json:"id"`
	AdvertisementID uint64    `gorm:"column:advertisement_id;not null;index:idx_adv_user,priority:1" json:"advertisement_id"`
	UserID          uint64    `gorm:"column:user_id;not null;index:idx_adv_user,priority:2" json:"user_id"`
	Kind            uint8     `gorm:"column:kind;not null;default:1" json:"kind"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Reaction) TableName() string { return "reactions" }
