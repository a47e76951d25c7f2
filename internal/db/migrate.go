package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies the schema. Every statement is idempotent, so it runs
// on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS shifts (
		id         TEXT PRIMARY KEY,
		position   INTEGER NOT NULL UNIQUE,
		name       TEXT NOT NULL UNIQUE,
		seconds    INTEGER NOT NULL DEFAULT 0 CHECK(seconds >= 0),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_shifts_position ON shifts(position)`,
}
