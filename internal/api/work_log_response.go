// File: internal/api/work_log_response.go
package api

// swagger:model api.WorkLogResponse
type WorkLogResponse struct {
	ID          int     `json:"id" example:"1"`
	WorkDate    string  `json:"work_date" example:"2024-01-10"`
	Hours       float64 `json:"hours" example:"3.5"`
	Description *string `json:"description" example:"sprint planning"`
	UserID      *string `json:"user_id" example:"5dc7d990-4e98-4e92-9033-316ad9fd9af7"`
	Tag         *string `json:"tag" example:"design"`
}
