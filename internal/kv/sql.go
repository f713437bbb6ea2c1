package kv

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/taskboard/internal/dbx"
)

type queries struct {
	get          string
	getForUpdate string
	set          string
	remove       string
}

// SQLStorage keeps every key as one row of the kv table.
type SQLStorage struct {
	db *sql.DB
	q  queries
}

func (s *SQLStorage) Get(ctx context.Context, key string) ([]byte, error) {
	return s.get(ctx, s.db, s.q.get, key)
}

func (s *SQLStorage) Set(ctx context.Context, key string, value []byte) error {
	return s.set(ctx, s.db, key, value)
}

func (s *SQLStorage) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, s.q.remove, key); err != nil {
		return fmt.Errorf("failed to remove kv[%s]: %w", key, err)
	}
	return nil
}

// Update reads and rewrites key inside one transaction.
func (s *SQLStorage) Update(ctx context.Context, key string, fn UpdateFunc) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		current, err := s.get(ctx, tx, s.q.getForUpdate, key)
		if err != nil {
			return err
		}
		next, err := fn(current)
		if err != nil {
			return err
		}
		return s.set(ctx, tx, key, next)
	})
}

func (s *SQLStorage) Close() error {
	return s.db.Close()
}

// DB exposes the underlying handle for health checks.
func (s *SQLStorage) DB() *sql.DB {
	return s.db
}

func (s *SQLStorage) get(ctx context.Context, db dbx.DBTX, query, key string) ([]byte, error) {
	var value []byte
	err := db.QueryRowContext(ctx, query, key).Scan(&value)
	if dbx.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLStorage) set(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	if _, err := db.ExecContext(ctx, s.q.set, key, value); err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}
