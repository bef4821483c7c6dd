package domain

import "time"

// HabitEntry is one recorded habit value, kept as an append-only audit
// trail. Entries are display-only history; scoring always derives from
// the day record's latest measurements, never from this log.
type HabitEntry struct {
	ID        string
	Day       int
	Habit     HabitKind
	Value     float64
	Satisfied bool
	CreatedAt time.Time
}
