package types

type CreateCommentRequest struct {
	AdvertisementID uint64 `json:"advertisement_id" binding:"required"`
	Content         string `json:"content" binding:"required"`
}

type UpdateCommentRequest struct {
	CommentID uint64 `json:"comment_id" binding:"required"`
	Content   string `json:"content" binding:"required"`
}

type DeleteCommentRequest struct {
	CommentID uint64 `json:"comment_id" binding:"required"`
}
