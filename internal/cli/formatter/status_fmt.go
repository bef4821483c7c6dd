package formatter

import (
	"fmt"
	"strings"

	"github.com/nkoval/centum/internal/domain"
)

const overallProgressBarWidth = 20

// FormatStatus formats the challenge state into the status view: the
// current day header, today's habit checklist, score, streak and the
// overall 100-day progress bar.
func FormatStatus(state *domain.ChallengeState) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Day %d of %d", state.CurrentDay, domain.ChallengeDays)))
	b.WriteString("\n\n")

	rec := state.Day(state.CurrentDay)
	b.WriteString(renderChecklist(rec))
	b.WriteString("\n")

	score := 0
	if rec != nil {
		score = rec.Score
	}
	b.WriteString(fmt.Sprintf("Score:  %s\n", ScoreStyle(score).Render(fmt.Sprintf("%d/100", score))))
	b.WriteString(fmt.Sprintf("Streak: %s\n", StreakLine(state.Streak)))

	completed := completedDayCount(state)
	b.WriteString(fmt.Sprintf("Total:  %s of %d days\n",
		Bold(fmt.Sprintf("%d", completed)), domain.ChallengeDays))
	b.WriteString(RenderProgress(float64(completed)/float64(domain.ChallengeDays), overallProgressBarWidth))
	b.WriteString("\n")

	if state.Completed() {
		b.WriteString("\n" + StyleGreen.Render("Challenge complete! All 100 days done.") + "\n")
	}

	return b.String()
}

// renderChecklist renders the five-habit checklist for one record.
// A nil record shows every habit unlogged.
func renderChecklist(rec *domain.DayRecord) string {
	var b strings.Builder
	for _, kind := range domain.AllHabits {
		rule := domain.Rules[kind]

		value := Dim("--")
		done := false
		if rec != nil {
			if v, ok := rec.Measurement(kind); ok {
				value = StyleFg.Render(FormatValue(v) + " " + rule.Unit)
				done = rec.CompletedHabits[kind]
			}
		}

		b.WriteString(fmt.Sprintf("  %s %-8s %-14s %s\n",
			CheckMark(done),
			rule.Label,
			value,
			Dim(fmt.Sprintf("(%s %s)", FormatRuleTarget(rule), rule.Unit))))
	}
	return b.String()
}

func completedDayCount(state *domain.ChallengeState) int {
	n := 0
	for _, rec := range state.Days {
		if rec.Completed {
			n++
		}
	}
	return n
}
