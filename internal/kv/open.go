package kv

import (
	"context"
	"fmt"
)

// Backend names accepted by Open.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendS3       = "s3"
)

// Options selects and configures a backend.
type Options struct {
	Backend     string
	SQLitePath  string
	PostgresDSN string
	S3          S3Options
}

// Open constructs the backend named by o.Backend.
func Open(ctx context.Context, o Options) (Storage, error) {
	switch o.Backend {
	case BackendMemory, "":
		return NewMemoryStorage(), nil
	case BackendSQLite:
		return OpenSQLite(ctx, o.SQLitePath)
	case BackendPostgres:
		return OpenPostgres(ctx, o.PostgresDSN)
	case BackendS3:
		return NewS3Storage(ctx, o.S3)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", o.Backend)
	}
}
