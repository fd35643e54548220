package types

type UploadImageResp struct {
	ImageID uint64 `json:"image_id"`
	Url     string `json:"url"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}
