// File: internal/api/create_work_log_request.go
package api

// CreateWorkLogRequest 建立單筆工時紀錄的請求內容，
// work_date 為 ISO-8601 日期，hours 不可為負。
// swagger:model api.CreateWorkLogRequest
type CreateWorkLogRequest struct {
	WorkDate    string  `json:"work_date" validate:"required,datetime=2006-01-02" example:"2024-01-10"`
	Hours       float64 `json:"hours" validate:"min=0" example:"3.5"`
	Description *string `json:"description" example:"sprint planning"`
	Tag         *string `json:"tag" example:"design"`
}
