package kv

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/taskboard/internal/filex"
	"github.com/dmitrijs2005/taskboard/internal/kv/migrations"
	_ "modernc.org/sqlite"
)

var sqliteQueries = queries{
	get:          `SELECT value FROM kv WHERE key = ?`,
	getForUpdate: `SELECT value FROM kv WHERE key = ?`,
	set: `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
	remove: `DELETE FROM kv WHERE key = ?`,
}

// NewSQLiteStorage wraps an already migrated SQLite handle.
func NewSQLiteStorage(db *sql.DB) *SQLStorage {
	return &SQLStorage{db: db, q: sqliteQueries}
}

// OpenSQLite opens the database at dsn, creating its directory if needed,
// and brings the schema up to date.
func OpenSQLite(ctx context.Context, dsn string) (*SQLStorage, error) {
	if err := filex.EnsureParentDir(dsn); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one connection keeps :memory: databases alive and serialises writers
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure sqlite: %w", err)
	}

	if err := RunSQLiteMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewSQLiteStorage(db), nil
}

// RunSQLiteMigrations applies the embedded SQLite migrations.
func RunSQLiteMigrations(ctx context.Context, db *sql.DB) error {
	return migrate(ctx, db, "sqlite3", migrations.SQLite, "sqlite")
}
