// File: internal/api/bulk_create_work_log_request.go
package api

// BulkCreateWorkLogRequest 批次建立工時紀錄，entries 至少一筆。
// swagger:model api.BulkCreateWorkLogRequest
type BulkCreateWorkLogRequest struct {
	Entries []CreateWorkLogRequest `json:"entries" validate:"required,min=1,dive"`
}
