// File: internal/store/work_log.go
package store

import (
	"context"
	"fmt"
	"time"

	"worklog/internal/database"
	"worklog/internal/model"

	"github.com/jackc/pgx/v5"
)

const insertWorkLogSQL = `INSERT INTO work_log_entries (work_date, hours, description, user_id, tag)
	 VALUES ($1, $2, $3, $4, $5)
	 RETURNING id`

// ListWorkLogEntries 列出 ownerID 的工時紀錄，start / end 為含端點的
// 日期範圍，nil 表示不設界。
func ListWorkLogEntries(ctx context.Context, db database.DB, ownerID string, start, end *time.Time) ([]model.WorkLogEntry, error) {
	sql := `SELECT id, work_date, hours, description, user_id, tag
		 FROM work_log_entries WHERE user_id = $1`
	args := []any{ownerID}
	if start != nil {
		args = append(args, *start)
		sql += fmt.Sprintf(" AND work_date >= $%d", len(args))
	}
	if end != nil {
		args = append(args, *end)
		sql += fmt.Sprintf(" AND work_date <= $%d", len(args))
	}
	sql += " ORDER BY work_date, id"

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("ListWorkLogEntries: %w", err)
	}
	defer rows.Close()

	entries := []model.WorkLogEntry{}
	for rows.Next() {
		var e model.WorkLogEntry
		if err := rows.Scan(&e.ID, &e.WorkDate, &e.Hours, &e.Description, &e.UserID, &e.Tag); err != nil {
			return nil, fmt.Errorf("ListWorkLogEntries: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListWorkLogEntries: %w", err)
	}
	return entries, nil
}

func CreateWorkLogEntry(ctx context.Context, db database.DB, e *model.WorkLogEntry) (*model.WorkLogEntry, error) {
	row := db.QueryRow(ctx, insertWorkLogSQL,
		e.WorkDate,
		e.Hours,
		e.Description,
		e.UserID,
		e.Tag,
	)
	if err := row.Scan(&e.ID); err != nil {
		return nil, fmt.Errorf("CreateWorkLogEntry: %w", err)
	}
	return e, nil
}

// CreateWorkLogEntries 在單一交易內寫入整批紀錄，
// 任一筆失敗即整批回滾，不留下部分結果。
func CreateWorkLogEntries(ctx context.Context, db database.DB, entries []*model.WorkLogEntry) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("CreateWorkLogEntries: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, e := range entries {
		row := tx.QueryRow(ctx, insertWorkLogSQL,
			e.WorkDate,
			e.Hours,
			e.Description,
			e.UserID,
			e.Tag,
		)
		if err := row.Scan(&e.ID); err != nil {
			return fmt.Errorf("CreateWorkLogEntries: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("CreateWorkLogEntries: %w", err)
	}
	return nil
}

// DeleteWorkLogEntryOwned 只刪除屬於 userID 的紀錄；
// 不存在與非擁有者皆回傳包裝後的 pgx.ErrNoRows，不洩漏紀錄是否存在。
func DeleteWorkLogEntryOwned(ctx context.Context, db database.DB, entryID int, userID string) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM work_log_entries WHERE id = $1 AND user_id = $2`,
		entryID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("DeleteWorkLogEntryOwned: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteWorkLogEntryOwned: %w", pgx.ErrNoRows)
	}
	return nil
}
