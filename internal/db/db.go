// Package db bootstraps the sqlite connection used for reflow's audit
// trail: a thin wrapper around database/sql plus a schema migration run
// at open time.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens (creating if necessary) the sqlite database at path and
// applies the current schema.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("db: mkdir for %s: %w", path, err)
		}
	}

	conn, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("db: open %s: %w", path, err)
	}
	conn.SetMaxOpenConns(1) // sqlite serializes writers; avoid pool contention

	if err := Migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("db: migrate %s: %w", path, err)
	}

	return conn, nil
}
