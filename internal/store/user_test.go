package store

import (
	"context"
	"errors"
	"testing"

	"worklog/internal/database"
	"worklog/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

/* ---------- 假實作 ---------- */

// fakeUserRow 支援兩種 Scan 呼叫場景：
// 1) len(dest)==3 → GetUserByID / EnsureUser (id, name, email)
// 2) len(dest)==1 → CreateUser (id)
type fakeUserRow struct {
	scanErr error
	user    *model.User
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.user
	switch len(dest) {
	case 3:
		*dest[0].(*string) = u.ID
		*dest[1].(**string) = u.Name
		*dest[2].(**string) = u.Email
	case 1:
		*dest[0].(*string) = u.ID
	default:
		panic("fakeUserRow.Scan: unexpected dest count")
	}
	return nil
}

// fakeUserRows 實作 pgx.Rows，用於模擬多筆掃描行為。
type fakeUserRows struct {
	data    []model.User
	idx     int
	scanErr error
	err     error
}

func (r *fakeUserRows) Close()                                       {}
func (r *fakeUserRows) Err() error                                   { return r.err }
func (r *fakeUserRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeUserRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeUserRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeUserRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeUserRows) RawValues() [][]byte                          { return nil }
func (r *fakeUserRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeUserRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.data[r.idx]
	r.idx++
	*dest[0].(*string) = u.ID
	*dest[1].(**string) = u.Name
	*dest[2].(**string) = u.Email
	return nil
}

func ptr(s string) *string { return &s }

/* ---------- 完整測試 ---------- */

func TestListUsers(t *testing.T) {
	sample := []model.User{
		{ID: "u1", Name: ptr("Alice"), Email: ptr("alice@example.com")},
		{ID: "u2"},
	}

	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeUserRows{data: sample}, nil
			},
		}
		users, err := ListUsers(context.Background(), db)
		require.NoError(t, err)
		require.Len(t, users, 2)
		require.Equal(t, "u1", users[0].ID)
		require.Nil(t, users[1].Name)
	})

	t.Run("query error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("query")
			},
		}
		_, err := ListUsers(context.Background(), db)
		require.Error(t, err)
	})

	t.Run("scan error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeUserRows{data: sample, scanErr: errors.New("scan")}, nil
			},
		}
		_, err := ListUsers(context.Background(), db)
		require.Error(t, err)
	})

	t.Run("rows error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeUserRows{err: errors.New("rows")}, nil
			},
		}
		_, err := ListUsers(context.Background(), db)
		require.Error(t, err)
	})
}

func TestGetUserByID(t *testing.T) {
	sample := &model.User{ID: "u1", Name: ptr("Alice"), Email: ptr("alice@example.com")}

	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{user: sample}
			},
		}
		u, err := GetUserByID(context.Background(), db, "u1")
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", *u.Email)
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: pgx.ErrNoRows}
			},
		}
		u, err := GetUserByID(context.Background(), db, "missing")
		require.Error(t, err)
		require.True(t, errors.Is(err, pgx.ErrNoRows))
		require.Nil(t, u)
	})
}

func TestCreateUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Len(t, args, 3)
				return &fakeUserRow{user: &model.User{ID: args[0].(string)}}
			},
		}
		u, err := CreateUser(context.Background(), db, &model.User{ID: "new-id", Name: ptr("Bob")})
		require.NoError(t, err)
		require.Equal(t, "new-id", u.ID)
	})

	t.Run("scan error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: errors.New("insert")}
			},
		}
		_, err := CreateUser(context.Background(), db, &model.User{ID: "new-id"})
		require.Error(t, err)
	})
}

func TestEnsureUser(t *testing.T) {
	t.Run("upsert returns record", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Len(t, args, 2)
				return &fakeUserRow{user: &model.User{
					ID:    args[0].(string),
					Name:  args[1].(*string),
					Email: args[1].(*string),
				}}
			},
		}
		u, err := EnsureUser(context.Background(), db, "owner-1", ptr("owner@example.com"))
		require.NoError(t, err)
		require.Equal(t, "owner-1", u.ID)
		require.Equal(t, "owner@example.com", *u.Name)
		require.Equal(t, "owner@example.com", *u.Email)
	})

	t.Run("store unreachable", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: errors.New("connection refused")}
			},
		}
		u, err := EnsureUser(context.Background(), db, "owner-1", nil)
		require.Error(t, err)
		require.Nil(t, u)
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		}
		require.NoError(t, DeleteUser(context.Background(), db, "u1"))
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 0"), nil
			},
		}
		err := DeleteUser(context.Background(), db, "missing")
		require.True(t, errors.Is(err, pgx.ErrNoRows))
	})

	t.Run("exec error", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("exec")
			},
		}
		require.Error(t, DeleteUser(context.Background(), db, "u1"))
	})
}
