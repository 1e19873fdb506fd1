// File: internal/model/user.go
package model

// User 代表一位記錄工時的使用者，ID 為外部身分提供者的 subject，
// name 與 email 皆可為空。
type User struct {
	ID    string  `db:"id" json:"id"`
	Name  *string `db:"name" json:"name"`
	Email *string `db:"email" json:"email"`
}
