package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nkoval/centum/internal/db"
	"github.com/nkoval/centum/internal/domain"
	"github.com/nkoval/centum/internal/repository"
)

type challengeService struct {
	challenges repository.ChallengeRepo
	entries    repository.EntryRepo
	uow        db.UnitOfWork
}

// NewChallengeService creates the ChallengeService over the given
// repositories and unit of work.
func NewChallengeService(challenges repository.ChallengeRepo, entries repository.EntryRepo, uow db.UnitOfWork) ChallengeService {
	return &challengeService{challenges: challenges, entries: entries, uow: uow}
}

func (s *challengeService) Status(ctx context.Context) (*domain.ChallengeState, error) {
	return s.challenges.Load(ctx)
}

func (s *challengeService) RecordHabit(ctx context.Context, kind domain.HabitKind, rawValue string) (*domain.RecordOutcome, error) {
	// Validation happens before any state is touched; invalid input
	// never reaches the store.
	value, err := domain.ParseMeasurement(rawValue)
	if err != nil {
		return nil, err
	}

	var out *domain.RecordOutcome
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txChallenges := repository.NewSQLiteChallengeRepo(tx)
		txEntries := repository.NewSQLiteEntryRepo(tx)

		state, err := txChallenges.Load(ctx)
		if err != nil {
			return err
		}

		out, err = state.RecordHabit(kind, value)
		if err != nil {
			return err
		}

		entry := &domain.HabitEntry{
			ID:        uuid.New().String(),
			Day:       out.Day,
			Habit:     kind,
			Value:     value,
			Satisfied: out.HabitDone,
			CreatedAt: time.Now().UTC(),
		}
		if err := txEntries.Append(ctx, entry); err != nil {
			return err
		}

		return txChallenges.Save(ctx, state)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *challengeService) Day(ctx context.Context, day int) (*domain.DayRecord, error) {
	if day < 1 || day > domain.ChallengeDays {
		return nil, fmt.Errorf("day %d outside challenge range 1..%d", day, domain.ChallengeDays)
	}
	state, err := s.challenges.Load(ctx)
	if err != nil {
		return nil, err
	}
	return state.Day(day), nil
}

func (s *challengeService) DayEntries(ctx context.Context, day int) ([]*domain.HabitEntry, error) {
	if day < 1 || day > domain.ChallengeDays {
		return nil, fmt.Errorf("day %d outside challenge range 1..%d", day, domain.ChallengeDays)
	}
	return s.entries.ListByDay(ctx, day)
}

const defaultHistoryLimit = 20

func (s *challengeService) RecentEntries(ctx context.Context, limit int) ([]*domain.HabitEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.entries.ListRecent(ctx, limit)
}

func (s *challengeService) SetMotivation(ctx context.Context, text string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txChallenges := repository.NewSQLiteChallengeRepo(tx)
		state, err := txChallenges.Load(ctx)
		if err != nil {
			return err
		}
		state.Motivation = text
		return txChallenges.Save(ctx, state)
	})
}

func (s *challengeService) RecomputeStreak(ctx context.Context) (int, error) {
	var streak int
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txChallenges := repository.NewSQLiteChallengeRepo(tx)
		state, err := txChallenges.Load(ctx)
		if err != nil {
			return err
		}
		streak = state.RecomputeStreak()
		return txChallenges.Save(ctx, state)
	})
	if err != nil {
		return 0, err
	}
	return streak, nil
}

func (s *challengeService) Restart(ctx context.Context, keepMotivation bool) (*domain.ChallengeState, error) {
	var fresh *domain.ChallengeState
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txChallenges := repository.NewSQLiteChallengeRepo(tx)
		txEntries := repository.NewSQLiteEntryRepo(tx)

		state, err := txChallenges.Load(ctx)
		if err != nil {
			return err
		}
		fresh = state.Restart(keepMotivation)

		if err := txEntries.DeleteAll(ctx); err != nil {
			return err
		}
		return txChallenges.Save(ctx, fresh)
	})
	if err != nil {
		return nil, err
	}
	return fresh, nil
}
