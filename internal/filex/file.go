// Package filex contains small filesystem helpers.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureParentDir creates the directory that will hold the SQLite database
// named by dsn. In-memory DSNs and bare file names need nothing.
func EnsureParentDir(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}

	clean := strings.TrimPrefix(dsn, "file:")
	clean, _, _ = strings.Cut(clean, "?")

	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}
