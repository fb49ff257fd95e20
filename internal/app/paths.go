package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName = "drip"
	dbFileName = "drip.db"

	// DBPathEnv overrides the default database location when set.
	DBPathEnv = "DRIP_DB"
)

// DefaultDBPath resolves where the hydration database lives when --db is not
// given: the DRIP_DB environment variable first, then the per-user config dir.
func DefaultDBPath() (string, error) {
	if fromEnv := os.Getenv(DBPathEnv); fromEnv != "" {
		return fromEnv, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, dbFileName), nil
}

// EnsureDBDir creates the parent directory for the database file.
func EnsureDBDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	return nil
}
