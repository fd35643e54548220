package models

import "time"

// UserStat 每用户一行的统计冗余表。
// 只由 StatsService 重算写入，永远不直接随用户请求修改。
type UserStat struct {
	ID                 uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID             uint64    `gorm:"column:user_id;not null;uniqueIndex" json:"user_id"`
	AdvertisementCount int       `gorm:"column:advertisement_count;not null;default:0" json:"advertisement_count"`
	LikeCount          int       `gorm:"column:like_count;not null;default:0" json:"like_count"`
	DislikeCount       int       `gorm:"column:dislike_count;not null;default:0" json:"dislike_count"`
	CommentCount       int       `gorm:"column:comment_count;not null;default:0" json:"comment_count"`
	CreatedAt          time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (UserStat) TableName() string {
	return "user_stats"
}
