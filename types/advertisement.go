package types

import "adboard/models"

type CreateAdvertisementRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

type CreateAdvertisementResponse struct {
	AdvertisementID uint64 `json:"advertisement_id"`
}

type UpdateAdvertisementRequest struct {
	AdvertisementID uint64 `json:"advertisement_id" binding:"required"`
	Title           string `json:"title" binding:"required"`
	Content         string `json:"content"`
}

type DeleteAdvertisementRequest struct {
	AdvertisementID uint64 `json:"advertisement_id" binding:"required"`
}

// AdvertisementItem 列表项，公告加其图片
type AdvertisementItem struct {
	*models.Advertisement
	Images []*models.Image `json:"images"`
}

type ListAdvertisementsResponse struct {
	Items    []*AdvertisementItem `json:"items"`
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
}

// AdvertisementDetail 详情页：公告、图片、评论与当前用户的反应状态
type AdvertisementDetail struct {
	Advertisement *models.Advertisement `json:"advertisement"`
	Images        []*models.Image       `json:"images"`
	Comments      []*models.Comment     `json:"comments"`
	Liked         bool                  `json:"liked"`
	Disliked      bool                  `json:"disliked"`
}
