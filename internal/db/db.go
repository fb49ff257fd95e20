package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Open opens the drip database at path. The pool is pinned to a single
// connection so day-level locking in the service layer is the only
// serialization we need.
func Open(path string) (*sql.DB, error) {
	sqldb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open drip database: %w", err)
	}
	sqldb.SetMaxOpenConns(1)
	if err := sqldb.Ping(); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("ping drip database: %w", err)
	}
	if _, err := sqldb.Exec(`PRAGMA foreign_keys = ON; PRAGMA busy_timeout = 5000;`); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("configure drip database: %w", err)
	}
	return sqldb, nil
}
