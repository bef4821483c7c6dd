package formatter

import (
	"strings"
	"testing"

	"github.com/nkoval/centum/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatCalendar_GridShape(t *testing.T) {
	out := FormatCalendar(domain.NewChallengeState())

	assert.Contains(t, out, "CALENDAR")
	assert.Contains(t, out, "  1")
	assert.Contains(t, out, "100")

	// Ten rows of ten day numbers.
	gridLines := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "■") || !strings.ContainsAny(line, "0123456789") {
			continue
		}
		assert.Len(t, strings.Fields(line), 10)
		gridLines++
	}
	assert.Equal(t, 10, gridLines)
}

func TestClassifyDay(t *testing.T) {
	state := domain.NewChallengeState()
	state.GetOrCreateDay(1).Completed = true
	state.GetOrCreateDay(2) // touched, not completed
	state.CurrentDay = 3

	assert.Equal(t, cellCompleted, classifyDay(state, 1))
	assert.Equal(t, cellMissed, classifyDay(state, 2))
	assert.Equal(t, cellCurrent, classifyDay(state, 3))
	assert.Equal(t, cellFuture, classifyDay(state, 4))
}

func TestClassifyDay_UntouchedPastDayIsMissed(t *testing.T) {
	state := domain.NewChallengeState()
	state.CurrentDay = 5

	assert.Equal(t, cellMissed, classifyDay(state, 2))
}
