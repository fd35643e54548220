package types

type TriggerGenerationResponse struct {
	JobID uint64 `json:"job_id"`
}
