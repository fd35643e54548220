package models

import "time"

type Users struct {
	ID        uint64    `gorm:"column:id;primary_key" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex" json:"username"`
	Nickname  string    `gorm:"column:nickname;type:varchar(64);not null;default:''" json:"nickname"`
	Password  string    `gorm:"column:password;type:varchar(255);not null" json:"-"`
	IsAdmin   bool      `gorm:"column:is_admin;not null;default:0" json:"is_admin"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}
