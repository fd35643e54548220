package service

import "errors"

var (
	ErrAdvertisementNotFound = errors.New("公告不存在")
	ErrCommentNotFound       = errors.New("评论不存在")
	ErrImageNotFound         = errors.New("图片不存在")
	ErrPermissionDenied      = errors.New("无权操作他人的内容")
	ErrOnlyAuthorCanDelete   = errors.New("只有作者本人可以删除公告")
	ErrGenerationInFlight    = errors.New("该公告已有生成任务在执行")
)
