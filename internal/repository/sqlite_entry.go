package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nkoval/centum/internal/db"
	"github.com/nkoval/centum/internal/domain"
)

// SQLiteEntryRepo implements EntryRepo over a SQLite database.
type SQLiteEntryRepo struct {
	db db.DBTX
}

// NewSQLiteEntryRepo creates a new SQLiteEntryRepo.
func NewSQLiteEntryRepo(conn db.DBTX) *SQLiteEntryRepo {
	return &SQLiteEntryRepo{db: conn}
}

func (r *SQLiteEntryRepo) Append(ctx context.Context, e *domain.HabitEntry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO habit_entries (id, day, habit, value, satisfied, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Day, string(e.Habit), e.Value, boolToInt(e.Satisfied),
		e.CreatedAt.UTC().Format(entryTimeFormat))
	if err != nil {
		return fmt.Errorf("appending habit entry: %w", err)
	}
	return nil
}

func (r *SQLiteEntryRepo) ListByDay(ctx context.Context, day int) ([]*domain.HabitEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, day, habit, value, satisfied, created_at
		 FROM habit_entries WHERE day = ? ORDER BY created_at, id`, day)
	if err != nil {
		return nil, fmt.Errorf("listing habit entries for day %d: %w", day, err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func (r *SQLiteEntryRepo) ListRecent(ctx context.Context, limit int) ([]*domain.HabitEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, day, habit, value, satisfied, created_at
		 FROM habit_entries ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent habit entries: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func (r *SQLiteEntryRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM habit_entries`); err != nil {
		return fmt.Errorf("clearing habit entries: %w", err)
	}
	return nil
}

func scanEntries(rows *sql.Rows) ([]*domain.HabitEntry, error) {
	var entries []*domain.HabitEntry
	for rows.Next() {
		var e domain.HabitEntry
		var habit, createdAt string
		var satisfied int
		if err := rows.Scan(&e.ID, &e.Day, &habit, &e.Value, &satisfied, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning habit entry: %w", err)
		}
		e.Habit = domain.HabitKind(habit)
		e.Satisfied = intToBool(satisfied)
		if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			e.CreatedAt = t
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating habit entries: %w", err)
	}
	return entries, nil
}
