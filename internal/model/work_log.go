// File: internal/model/work_log.go
package model

import "time"

// WorkLogEntry 紀錄某一天的工作時數與備註。
// WorkDate 僅取日期部分；UserID 在使用者刪除後會被清為 NULL。
type WorkLogEntry struct {
	ID          int       `db:"id" json:"id"`
	WorkDate    time.Time `db:"work_date" json:"work_date"`
	Hours       float64   `db:"hours" json:"hours"`
	Description *string   `db:"description" json:"description"`
	UserID      *string   `db:"user_id" json:"user_id"`
	Tag         *string   `db:"tag" json:"tag"`
}
