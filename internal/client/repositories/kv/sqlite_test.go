package kv

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kv (
  key        TEXT PRIMARY KEY,
  value      BLOB NOT NULL,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRepository_Contract(t *testing.T) {
	runContract(t, func(t *testing.T) Repository {
		return NewSQLiteRepository(setupDB(t))
	})
}

func TestSQLiteRepository_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dsn := t.TempDir() + "/session.db"

	open := func() *SQLiteRepository {
		db, err := sql.Open("sqlite", dsn)
		require.NoError(t, err)
		_, err = db.Exec(`CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value BLOB NOT NULL, updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP)`)
		require.NoError(t, err)
		return NewSQLiteRepository(db)
	}

	r := open()
	require.NoError(t, r.Set(ctx, "token", []byte("persisted")))
	require.NoError(t, r.Close())

	r = open()
	defer r.Close()
	v, err := r.Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, []byte("persisted"), v)
}

func TestSQLiteRepository_DBErrorsWrapped(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		call func(r *SQLiteRepository) error
		want string
	}{
		{"get", func(r *SQLiteRepository) error { _, err := r.Get(ctx, "k"); return err }, "failed to get kv[k]"},
		{"set", func(r *SQLiteRepository) error { return r.Set(ctx, "k", []byte("v")) }, "failed to set kv[k]"},
		{"delete", func(r *SQLiteRepository) error { return r.Delete(ctx, "k", "j") }, "failed to delete kv[k,j]"},
		{"clear", func(r *SQLiteRepository) error { return r.Clear(ctx) }, "failed to clear kv"},
		{"list", func(r *SQLiteRepository) error { _, err := r.List(ctx); return err }, "failed to list kv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupDB(t)
			r := NewSQLiteRepository(db)
			require.NoError(t, db.Close())

			err := tt.call(r)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}
