package service

import (
	"context"

	"github.com/nkoval/centum/internal/domain"
)

// ChallengeService is the application surface over the challenge state
// machine. Every mutating call loads the persisted state, applies one
// core operation and saves the result inside a single transaction.
type ChallengeService interface {
	// Status returns the current persisted challenge state.
	Status(ctx context.Context) (*domain.ChallengeState, error)

	// RecordHabit validates raw text input and applies it to the
	// current day. Completing the last outstanding habit completes the
	// day, extends the streak and advances the day pointer in the same
	// call.
	RecordHabit(ctx context.Context, kind domain.HabitKind, rawValue string) (*domain.RecordOutcome, error)

	// Day is a read-only day-detail query; the record is nil when the
	// day has not been touched.
	Day(ctx context.Context, day int) (*domain.DayRecord, error)

	// DayEntries lists the audit log of values recorded for a day.
	DayEntries(ctx context.Context, day int) ([]*domain.HabitEntry, error)

	// RecentEntries lists the newest recorded values across all days,
	// newest first. A non-positive limit selects a sensible default.
	RecentEntries(ctx context.Context, limit int) ([]*domain.HabitEntry, error)

	// SetMotivation replaces the motivation text.
	SetMotivation(ctx context.Context, text string) error

	// RecomputeStreak repairs the streak with the backward walk from
	// the current day. Run at process start and after a restart.
	RecomputeStreak(ctx context.Context) (int, error)

	// Restart discards the whole challenge and persists a fresh one,
	// keeping the motivation text when asked. Unconditional; any
	// confirmation gating belongs to the presentation layer.
	Restart(ctx context.Context, keepMotivation bool) (*domain.ChallengeState, error)
}
