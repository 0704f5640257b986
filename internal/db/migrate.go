package db

import (
	"database/sql"
	"fmt"
)

// migrations are idempotent schema statements, run in order on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS schedules (
		id TEXT PRIMARY KEY,
		duration TEXT NOT NULL,
		goals TEXT NOT NULL,
		available_hours REAL NOT NULL,
		considerations TEXT NOT NULL,
		body TEXT NOT NULL,
		model TEXT NOT NULL DEFAULT '',
		source TEXT NOT NULL DEFAULT 'rules',
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_schedules_created_at ON schedules(created_at)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
