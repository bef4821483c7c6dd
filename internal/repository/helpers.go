package repository

import "time"

// entryTimeFormat is a fixed-width UTC timestamp. Fixed fraction digits
// keep lexicographic TEXT ordering equal to chronological ordering.
const entryTimeFormat = "2006-01-02T15:04:05.000000000Z"

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
