package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ChallengeDays is the fixed length of the challenge. Day numbers run
// 1..ChallengeDays; the final day is terminal and never advances.
const ChallengeDays = 100

// ChallengeState is the whole tracked state of one challenge. A single
// instance is owned by the caller and passed into every operation; the
// operations mutate it in place and the caller persists it afterwards.
type ChallengeState struct {
	CurrentDay int
	Streak     int
	Days       map[int]*DayRecord
	Motivation string
}

// NewChallengeState returns a fresh challenge: day 1, no streak, no
// days touched, empty motivation.
func NewChallengeState() *ChallengeState {
	return &ChallengeState{
		CurrentDay: 1,
		Days:       make(map[int]*DayRecord),
	}
}

// Day returns the record for day, or nil when the day has not been
// touched. Read-only companion to GetOrCreateDay.
func (s *ChallengeState) Day(day int) *DayRecord {
	return s.Days[day]
}

// GetOrCreateDay returns the record for day, creating and storing a
// fresh default record when absent.
func (s *ChallengeState) GetOrCreateDay(day int) *DayRecord {
	rec, ok := s.Days[day]
	if !ok {
		rec = NewDayRecord()
		s.Days[day] = rec
	}
	return rec
}

// ParseMeasurement validates raw text input for a habit value. The
// value must parse to a finite number greater than or equal to zero.
func ParseMeasurement(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidInput)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidInput, raw)
	}
	return v, nil
}

// RecordOutcome describes the result of recording one habit entry.
type RecordOutcome struct {
	Kind         HabitKind
	Value        float64
	Day          int  // day the entry applied to
	HabitDone    bool // this habit's rule is satisfied after the entry
	DayCompleted bool // the entry completed the day
	Score        int
	Streak       int
	CurrentDay   int // current day after any advancement
	Message      string
}

// RecordHabit applies one measurement to the current day. The value is
// assumed pre-validated via ParseMeasurement. A completed day's
// measurements are immutable; attempts fail with ErrDayLocked and leave
// the state untouched. When the entry satisfies the last outstanding
// habit, day completion runs as part of the same operation.
func (s *ChallengeState) RecordHabit(kind HabitKind, value float64) (*RecordOutcome, error) {
	rule, ok := Rules[kind]
	if !ok {
		return nil, &UnknownHabitError{Name: string(kind)}
	}

	day := s.CurrentDay
	rec := s.GetOrCreateDay(day)
	if rec.Completed {
		return nil, fmt.Errorf("day %d: %w", day, ErrDayLocked)
	}

	rec.SetMeasurement(kind, value)

	out := &RecordOutcome{
		Kind:      kind,
		Value:     value,
		Day:       day,
		HabitDone: rec.CompletedHabits[kind],
		Score:     rec.Score,
	}
	if out.HabitDone {
		out.Message = rule.DoneMsg
	} else {
		out.Message = rule.MissMsg
	}

	if rec.AllHabitsCompleted() {
		s.completeDay(rec)
		out.DayCompleted = true
	}
	out.Streak = s.Streak
	out.CurrentDay = s.CurrentDay
	return out, nil
}

// completeDay locks the record, extends the streak and advances the
// current day. The streak is incremented rather than re-derived here;
// the backward recomputation runs at load and restart time only.
func (s *ChallengeState) completeDay(rec *DayRecord) {
	rec.Completed = true
	s.Streak++
	if s.CurrentDay < ChallengeDays {
		s.CurrentDay++
	}
}

// RecomputeStreak walks backward starting at the current day, counting
// consecutive completed days, and stops at the first missing or
// incomplete day. The walk deliberately starts at the in-progress day
// itself: when its record does not exist yet the walk skips it and
// continues from the day before, so three completed days with the
// pointer on an untouched fourth yield a streak of three. An existing
// but incomplete current day halts the walk immediately. Sets and
// returns the repaired streak.
func (s *ChallengeState) RecomputeStreak() int {
	n := 0
	for day := s.CurrentDay; day >= 1; day-- {
		rec, ok := s.Days[day]
		if !ok {
			if day == s.CurrentDay {
				continue
			}
			break
		}
		if !rec.Completed {
			break
		}
		n++
	}
	s.Streak = n
	return n
}

// Completed reports whether the whole challenge is finished: the
// terminal day's record exists and is completed.
func (s *ChallengeState) Completed() bool {
	rec, ok := s.Days[ChallengeDays]
	return ok && rec.Completed
}

// Restart returns a brand-new challenge state, keeping the motivation
// text when asked. The prior state is discarded entirely; any
// confirmation gating belongs to the caller.
func (s *ChallengeState) Restart(keepMotivation bool) *ChallengeState {
	fresh := NewChallengeState()
	if keepMotivation {
		fresh.Motivation = s.Motivation
	}
	return fresh
}
