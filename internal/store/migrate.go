package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/tursodatabase/go-libsql"
)

// Open opens (creating if needed) the run database at path.
func Open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	db, err := sql.Open("libsql", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id             TEXT PRIMARY KEY,
			created_at     INTEGER NOT NULL,
			trials         INTEGER NOT NULL,
			seed           INTEGER NOT NULL,
			gamma          REAL NOT NULL,
			lambda         REAL NOT NULL,
			tau            REAL NOT NULL,
			precision_mode TEXT NOT NULL DEFAULT 'corrected',
			fingerprint    TEXT NOT NULL DEFAULT '',
			precision      REAL NOT NULL,
			recall         REAL NOT NULL,
			f              REAL NOT NULL,
			degenerate     INTEGER NOT NULL DEFAULT 0
		);`,
		"CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);",
		`CREATE TABLE IF NOT EXISTS trials (
			run_id            TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			trial             INTEGER NOT NULL,
			seed              INTEGER NOT NULL,
			precision         REAL NOT NULL,
			recall            REAL NOT NULL,
			correct           INTEGER NOT NULL,
			precision_defined INTEGER NOT NULL,
			PRIMARY KEY (run_id, trial)
		);`,
		// lexicon entries keep the builder's emission order via position
		`CREATE TABLE IF NOT EXISTS lexicon_entries (
			run_id   TEXT NOT NULL,
			trial    INTEGER NOT NULL,
			position INTEGER NOT NULL,
			word     TEXT NOT NULL,
			meaning  TEXT NOT NULL,
			PRIMARY KEY (run_id, trial, position)
		);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run migration statement: %w", err)
		}
	}

	return nil
}
