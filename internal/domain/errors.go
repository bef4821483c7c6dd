package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput reports a habit value that is not a finite,
// non-negative number. The state is left unchanged.
var ErrInvalidInput = errors.New("invalid habit value")

// ErrDayLocked reports an attempt to change a day whose record is
// already completed. Completed days are immutable.
var ErrDayLocked = errors.New("day already completed")

// UnknownHabitError reports a habit name outside the fixed five.
type UnknownHabitError struct {
	Name string
}

func (e *UnknownHabitError) Error() string {
	return fmt.Sprintf("unknown habit %q (expected sleep, water, workout, study or food)", e.Name)
}
