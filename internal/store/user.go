// File: internal/store/user.go
package store

import (
	"context"
	"fmt"

	"worklog/internal/database"
	"worklog/internal/model"

	"github.com/jackc/pgx/v5"
)

func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, email FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

func GetUserByID(ctx context.Context, db database.DB, userID string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, email FROM users WHERE id = $1`,
		userID,
	)
	u := &model.User{}
	if err := row.Scan(&u.ID, &u.Name, &u.Email); err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (id, name, email)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		u.ID,
		u.Name,
		u.Email,
	)
	if err := row.Scan(&u.ID); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// EnsureUser 以單一 upsert 確保使用者存在（get-or-create）。
// 新建時 name 與 email 皆填入身分的 email。
func EnsureUser(ctx context.Context, db database.DB, userID string, email *string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (id, name, email)
		 VALUES ($1, $2, $2)
		 ON CONFLICT (id) DO UPDATE SET id = EXCLUDED.id
		 RETURNING id, name, email`,
		userID,
		email,
	)
	u := &model.User{}
	if err := row.Scan(&u.ID, &u.Name, &u.Email); err != nil {
		return nil, fmt.Errorf("EnsureUser: %w", err)
	}
	return u, nil
}

// DeleteUser 刪除使用者；其既有工時紀錄因外鍵 ON DELETE SET NULL
// 會保留並清除 user_id。找不到時回傳包裝後的 pgx.ErrNoRows。
func DeleteUser(ctx context.Context, db database.DB, userID string) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM users WHERE id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("DeleteUser: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteUser: %w", pgx.ErrNoRows)
	}
	return nil
}
