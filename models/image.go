package models

import "time"

const (
	ImageSourceUpload    = "upload"
	ImageSourceGenerated = "generated"
)

type Image struct {
	ID              uint64    `gorm:"column:id;primary_key" json:"id"`
	AdvertisementID uint64    `gorm:"column:advertisement_id;not null;index:idx_advertisement_id" json:"advertisement_id"`
	UserID          uint64    `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id"`
	FileKey         string    `gorm:"column:file_key;type:varchar(255);not null" json:"file_key"`
	Source          string    `gorm:"column:source;type:varchar(16);not null;default:'upload'" json:"source"`
	CreatedAt       time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Image) TableName() string {
	return "images"
}
