package types

type UpdatePreferencesRequest struct {
	Theme    string `json:"theme"`
	PageSize int    `json:"page_size"`
}
