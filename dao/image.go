package dao

import (
	"adboard/models"
	"context"

	"gorm.io/gorm"
)

type Image struct {
	Repo[models.Image]
}

func NewImage(db *gorm.DB) *Image {
	return &Image{
		Repo: NewRepo[models.Image](db),
	}
}

func (u *Image) CreateImage(ctx context.Context, image *models.Image) error {
	return u.Repo.Db.WithContext(ctx).Create(image).Error
}

// FindByAdvertisement 某公告下的全部图片
func (u *Image) FindByAdvertisement(ctx context.Context, advertisementID uint64) ([]*models.Image, error) {
	return u.FindAllByWhere(ctx, "advertisement_id = ?", advertisementID)
}
