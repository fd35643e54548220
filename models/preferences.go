package models

import "time"

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Preferences 用户展示偏好，每用户一行
type Preferences struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex" json:"user_id"`
	Theme     string    `gorm:"column:theme;type:varchar(16);not null;default:'light'" json:"theme"`
	PageSize  int       `gorm:"column:page_size;not null;default:10" json:"page_size"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Preferences) TableName() string {
	return "user_preferences"
}
