package repository

import (
	"context"

	"github.com/nkoval/centum/internal/domain"
)

// ChallengeRepo persists the single challenge state record under a
// fixed key. Load returns a fresh default state when nothing is stored;
// malformed stored fields are normalized rather than surfaced as errors.
type ChallengeRepo interface {
	Load(ctx context.Context) (*domain.ChallengeState, error)
	Save(ctx context.Context, state *domain.ChallengeState) error
}

// EntryRepo is the append-only habit entry log.
type EntryRepo interface {
	Append(ctx context.Context, e *domain.HabitEntry) error
	ListByDay(ctx context.Context, day int) ([]*domain.HabitEntry, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.HabitEntry, error)
	DeleteAll(ctx context.Context) error
}
