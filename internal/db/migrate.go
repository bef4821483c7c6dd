package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent and
// re-run on every open.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// The whole challenge state is one serialized record under a fixed
	// key. Exactly one row may exist.
	`CREATE TABLE IF NOT EXISTS challenge_state (
		id         TEXT PRIMARY KEY CHECK(id = 'default'),
		payload    TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	// Append-only audit trail of every recorded habit value. Display
	// history only; derived day state never reads it back.
	`CREATE TABLE IF NOT EXISTS habit_entries (
		id         TEXT PRIMARY KEY,
		day        INTEGER NOT NULL CHECK(day BETWEEN 1 AND 100),
		habit      TEXT NOT NULL
		           CHECK(habit IN ('sleep','water','workout','study','food')),
		value      REAL NOT NULL,
		satisfied  INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_habit_entries_day ON habit_entries(day)`,
}
