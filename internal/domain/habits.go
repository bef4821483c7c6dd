package domain

// HabitKind identifies one of the five tracked daily habits.
type HabitKind string

const (
	HabitSleep   HabitKind = "sleep"
	HabitWater   HabitKind = "water"
	HabitWorkout HabitKind = "workout"
	HabitStudy   HabitKind = "study"
	HabitFood    HabitKind = "food"
)

// AllHabits lists every habit kind in display order.
var AllHabits = []HabitKind{HabitSleep, HabitWater, HabitWorkout, HabitStudy, HabitFood}

// PointsPerHabit is each habit's contribution to the day score.
// Five habits at 20 points each cap the day at 100.
const PointsPerHabit = 20

// HabitRule is the completion rule for one habit. Min is the inclusive
// minimum. HasMax marks a range rule; food is the only one.
type HabitRule struct {
	Label   string
	Unit    string
	Min     float64
	Max     float64
	HasMax  bool
	DoneMsg string
	MissMsg string
}

// Rules is the fixed policy table, keyed by habit kind. Each entry carries
// the completion rule and the feedback messages shown after an entry.
var Rules = map[HabitKind]HabitRule{
	HabitSleep: {
		Label:   "Sleep",
		Unit:    "h",
		Min:     7,
		DoneMsg: "Sleep goal met. Well rested!",
		MissMsg: "Below the 7 h sleep target.",
	},
	HabitWater: {
		Label:   "Water",
		Unit:    "glasses",
		Min:     8,
		DoneMsg: "Water goal met. Stay hydrated!",
		MissMsg: "Below the 8 glass water target.",
	},
	HabitWorkout: {
		Label:   "Workout",
		Unit:    "min",
		Min:     30,
		DoneMsg: "Workout goal met. Strong!",
		MissMsg: "Below the 30 min workout target.",
	},
	HabitStudy: {
		Label:   "Study",
		Unit:    "min",
		Min:     60,
		DoneMsg: "Study goal met. Sharp!",
		MissMsg: "Below the 60 min study target.",
	},
	HabitFood: {
		Label:   "Food",
		Unit:    "kcal",
		Min:     1500,
		Max:     2500,
		HasMax:  true,
		DoneMsg: "Food goal met. Balanced intake!",
		MissMsg: "Outside the 1500-2500 kcal range.",
	},
}

// ParseHabitKind resolves a user-supplied habit name to its kind.
func ParseHabitKind(s string) (HabitKind, error) {
	kind := HabitKind(s)
	if _, ok := Rules[kind]; !ok {
		return "", &UnknownHabitError{Name: s}
	}
	return kind, nil
}

// IsHabitCompleted reports whether value satisfies kind's rule.
// Comparisons are on the raw value exactly as supplied; fractional
// values are allowed.
func IsHabitCompleted(kind HabitKind, value float64) bool {
	rule, ok := Rules[kind]
	if !ok {
		return false
	}
	if rule.HasMax {
		return value >= rule.Min && value <= rule.Max
	}
	return value >= rule.Min
}

// HabitPoints returns the score contribution for a single habit entry:
// PointsPerHabit when the rule is satisfied, zero otherwise.
func HabitPoints(kind HabitKind, value float64) int {
	if IsHabitCompleted(kind, value) {
		return PointsPerHabit
	}
	return 0
}
