package domain

// DayRecord holds one challenge day's measurements and the state derived
// from them. Measurements is sparse: a missing key means the habit has
// not been logged that day. CompletedHabits and Score are always
// recomputed from the latest measurements, never set independently.
type DayRecord struct {
	Measurements    map[HabitKind]float64
	CompletedHabits map[HabitKind]bool
	Score           int
	Completed       bool
}

// NewDayRecord returns an empty record: nothing logged, score zero.
func NewDayRecord() *DayRecord {
	return &DayRecord{
		Measurements:    make(map[HabitKind]float64),
		CompletedHabits: make(map[HabitKind]bool),
	}
}

// Measurement returns the logged value for kind and whether one exists.
func (r *DayRecord) Measurement(kind HabitKind) (float64, bool) {
	v, ok := r.Measurements[kind]
	return v, ok
}

// SetMeasurement stores the latest value for kind and recomputes the
// derived completion flag and day score. Re-entries overwrite; only the
// latest value counts.
func (r *DayRecord) SetMeasurement(kind HabitKind, value float64) {
	r.Measurements[kind] = value
	r.CompletedHabits[kind] = IsHabitCompleted(kind, value)
	r.Score = r.DayScore()
}

// DayScore sums per-habit points across all five habits. An unlogged
// habit contributes zero.
func (r *DayRecord) DayScore() int {
	score := 0
	for _, kind := range AllHabits {
		v, ok := r.Measurements[kind]
		if !ok {
			continue
		}
		score += HabitPoints(kind, v)
	}
	return score
}

// AllHabitsCompleted reports whether every habit's rule is satisfied.
func (r *DayRecord) AllHabitsCompleted() bool {
	for _, kind := range AllHabits {
		if !r.CompletedHabits[kind] {
			return false
		}
	}
	return true
}
