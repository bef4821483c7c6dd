package repository

import (
	"encoding/json"
	"strconv"

	"github.com/nkoval/centum/internal/domain"
)

// The stored payload keeps the externally specified shape: habit values
// at the top of each day object (null when unlogged), derived fields
// alongside, and the motivation text under "whyStarted".

type dayJSON struct {
	Sleep           *float64        `json:"sleep"`
	Water           *float64        `json:"water"`
	Workout         *float64        `json:"workout"`
	Study           *float64        `json:"study"`
	Food            *float64        `json:"food"`
	CompletedHabits map[string]bool `json:"completedHabits"`
	Score           int             `json:"score"`
	Completed       bool            `json:"completed"`
}

type stateJSON struct {
	CurrentDay int                `json:"currentDay"`
	Streak     int                `json:"streak"`
	Days       map[string]dayJSON `json:"days"`
	WhyStarted string             `json:"whyStarted"`
}

// rawStateJSON defers currentDay and streak so malformed values can be
// replaced with safe defaults instead of failing the whole read.
type rawStateJSON struct {
	CurrentDay json.RawMessage    `json:"currentDay"`
	Streak     json.RawMessage    `json:"streak"`
	Days       map[string]dayJSON `json:"days"`
	WhyStarted string             `json:"whyStarted"`
}

func encodeState(state *domain.ChallengeState) ([]byte, error) {
	out := stateJSON{
		CurrentDay: state.CurrentDay,
		Streak:     state.Streak,
		Days:       make(map[string]dayJSON, len(state.Days)),
		WhyStarted: state.Motivation,
	}
	for day, rec := range state.Days {
		d := dayJSON{
			Sleep:           measurementPtr(rec, domain.HabitSleep),
			Water:           measurementPtr(rec, domain.HabitWater),
			Workout:         measurementPtr(rec, domain.HabitWorkout),
			Study:           measurementPtr(rec, domain.HabitStudy),
			Food:            measurementPtr(rec, domain.HabitFood),
			CompletedHabits: make(map[string]bool, len(domain.AllHabits)),
			Score:           rec.Score,
			Completed:       rec.Completed,
		}
		for _, kind := range domain.AllHabits {
			d.CompletedHabits[string(kind)] = rec.CompletedHabits[kind]
		}
		out.Days[strconv.Itoa(day)] = d
	}
	return json.Marshal(out)
}

// decodeState rebuilds a challenge state from a stored payload. The
// read is tolerant: an unparseable payload yields a fresh state,
// malformed currentDay/streak fall back to 1 and 0, out-of-range day
// keys are dropped, and the derived per-day fields are recomputed from
// the measurements so the scoring invariants hold regardless of what
// was stored.
func decodeState(payload []byte) *domain.ChallengeState {
	state := domain.NewChallengeState()

	var raw rawStateJSON
	if err := json.Unmarshal(payload, &raw); err != nil {
		return state
	}

	if day, ok := decodeInt(raw.CurrentDay); ok && day >= 1 && day <= domain.ChallengeDays {
		state.CurrentDay = day
	}
	if streak, ok := decodeInt(raw.Streak); ok && streak >= 0 {
		state.Streak = streak
	}
	state.Motivation = raw.WhyStarted

	for key, d := range raw.Days {
		day, err := strconv.Atoi(key)
		if err != nil || day < 1 || day > domain.ChallengeDays {
			continue
		}
		rec := state.GetOrCreateDay(day)
		setMeasurement(rec, domain.HabitSleep, d.Sleep)
		setMeasurement(rec, domain.HabitWater, d.Water)
		setMeasurement(rec, domain.HabitWorkout, d.Workout)
		setMeasurement(rec, domain.HabitStudy, d.Study)
		setMeasurement(rec, domain.HabitFood, d.Food)
		// The stored flag alone cannot lock a day whose measurements do
		// not actually satisfy every rule.
		rec.Completed = d.Completed && rec.AllHabitsCompleted()
	}
	return state
}

func decodeInt(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var v int
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}
	return v, true
}

func measurementPtr(rec *domain.DayRecord, kind domain.HabitKind) *float64 {
	if v, ok := rec.Measurement(kind); ok {
		return &v
	}
	return nil
}

func setMeasurement(rec *domain.DayRecord, kind domain.HabitKind, v *float64) {
	if v != nil {
		rec.SetMeasurement(kind, *v)
	}
}
