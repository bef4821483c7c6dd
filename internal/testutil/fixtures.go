package testutil

import (
	"github.com/nkoval/centum/internal/domain"
)

// PassingValues maps each habit to a value that satisfies its rule.
var PassingValues = map[domain.HabitKind]float64{
	domain.HabitSleep:   8,
	domain.HabitWater:   8,
	domain.HabitWorkout: 30,
	domain.HabitStudy:   60,
	domain.HabitFood:    2200,
}

// NewStateWithCompletedDays builds a challenge state whose first n days
// are fully completed via the regular record path, leaving the current
// day at n+1 (capped at the terminal day).
func NewStateWithCompletedDays(n int) *domain.ChallengeState {
	state := domain.NewChallengeState()
	for day := 0; day < n; day++ {
		for _, kind := range domain.AllHabits {
			if _, err := state.RecordHabit(kind, PassingValues[kind]); err != nil {
				panic(err)
			}
		}
	}
	return state
}
