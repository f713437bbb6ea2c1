package kv

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/taskboard/internal/kv/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
)

var postgresQueries = queries{
	get:          `SELECT value FROM kv WHERE key = $1`,
	getForUpdate: `SELECT value FROM kv WHERE key = $1 FOR UPDATE`,
	set: `
		INSERT INTO kv (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
	remove: `DELETE FROM kv WHERE key = $1`,
}

// NewPostgresStorage wraps an already migrated PostgreSQL handle.
func NewPostgresStorage(db *sql.DB) *SQLStorage {
	return &SQLStorage{db: db, q: postgresQueries}
}

// OpenPostgres connects through the pgx stdlib driver and migrates the schema.
func OpenPostgres(ctx context.Context, dsn string) (*SQLStorage, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := RunPostgresMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewPostgresStorage(db), nil
}

// RunPostgresMigrations applies the embedded PostgreSQL migrations.
func RunPostgresMigrations(ctx context.Context, db *sql.DB) error {
	return migrate(ctx, db, "pgx", migrations.Postgres, "postgres")
}
