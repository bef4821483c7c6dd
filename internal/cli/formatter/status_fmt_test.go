package formatter

import (
	"strings"
	"testing"

	"github.com/nkoval/centum/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatStatus_FreshState(t *testing.T) {
	out := FormatStatus(domain.NewChallengeState())

	assert.Contains(t, out, "DAY 1 OF 100")
	assert.Contains(t, out, "Sleep")
	assert.Contains(t, out, "Food")
	assert.Contains(t, out, "0/100")
	assert.Contains(t, out, "No streak yet")
	assert.Contains(t, out, "--")
}

func TestFormatStatus_LoggedValuesAndUnits(t *testing.T) {
	state := domain.NewChallengeState()
	rec := state.GetOrCreateDay(1)
	rec.SetMeasurement(domain.HabitSleep, 7.5)
	rec.SetMeasurement(domain.HabitFood, 2200)

	out := FormatStatus(state)
	assert.Contains(t, out, "7.5 h")
	assert.Contains(t, out, "2200 kcal")
	assert.Contains(t, out, "40/100")
}

func TestFormatStatus_CompletedChallenge(t *testing.T) {
	state := domain.NewChallengeState()
	state.CurrentDay = domain.ChallengeDays
	for day := 1; day <= domain.ChallengeDays; day++ {
		state.GetOrCreateDay(day).Completed = true
	}

	out := FormatStatus(state)
	assert.Contains(t, out, "Challenge complete")
	assert.Contains(t, out, "100%")
}

func TestFormatRecordOutcome_DayCompleted(t *testing.T) {
	out := FormatRecordOutcome(&domain.RecordOutcome{
		Kind:         domain.HabitFood,
		Value:        2200,
		Day:          4,
		HabitDone:    true,
		DayCompleted: true,
		Score:        100,
		Streak:       4,
		CurrentDay:   5,
		Message:      domain.Rules[domain.HabitFood].DoneMsg,
	})

	assert.Contains(t, out, "Food = 2200 kcal")
	assert.Contains(t, out, "Day 4 complete")
	assert.Contains(t, out, "day 5")
	assert.Contains(t, out, "4 days streak")
}

func TestFormatRecordOutcome_Miss(t *testing.T) {
	out := FormatRecordOutcome(&domain.RecordOutcome{
		Kind:      domain.HabitWater,
		Value:     3,
		Day:       1,
		HabitDone: false,
		Score:     0,
		Message:   domain.Rules[domain.HabitWater].MissMsg,
	})

	assert.Contains(t, out, domain.Rules[domain.HabitWater].MissMsg)
	assert.NotContains(t, out, "complete")
}

func TestFormatValue_NoTrailingZeros(t *testing.T) {
	assert.Equal(t, "8", FormatValue(8))
	assert.Equal(t, "7.5", FormatValue(7.5))
	assert.Equal(t, "2200", FormatValue(2200))
}

func TestFormatRuleTarget(t *testing.T) {
	assert.Equal(t, "≥ 7", FormatRuleTarget(domain.Rules[domain.HabitSleep]))
	assert.Equal(t, "1500-2500", FormatRuleTarget(domain.Rules[domain.HabitFood]))
}

func TestRenderProgress_Bounds(t *testing.T) {
	full := RenderProgress(1, 10)
	assert.Contains(t, full, "100%")
	assert.Equal(t, 10, strings.Count(full, filledBlock))

	empty := RenderProgress(0, 10)
	assert.Contains(t, empty, "0%")
	assert.Equal(t, 10, strings.Count(empty, emptyBlock))

	clamped := RenderProgress(1.7, 10)
	assert.Contains(t, clamped, "100%")
}
