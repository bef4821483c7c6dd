package formatter

import (
	"fmt"
	"strings"

	"github.com/nkoval/centum/internal/domain"
)

// FormatDay formats the day-detail view. A nil record means the day
// has not been touched.
func FormatDay(day int, rec *domain.DayRecord) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Day %d", day)))
	b.WriteString("\n\n")

	if rec == nil {
		b.WriteString(Dim("Nothing logged for this day.") + "\n")
		return b.String()
	}

	b.WriteString(renderChecklist(rec))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Score: %s\n", ScoreStyle(rec.Score).Render(fmt.Sprintf("%d/100", rec.Score))))
	if rec.Completed {
		b.WriteString(StyleGreen.Render("Day completed.") + "\n")
	}

	return b.String()
}

// FormatEntries formats the audit log of recorded values for a day.
func FormatEntries(entries []*domain.HabitEntry) string {
	var b strings.Builder

	b.WriteString("\n" + Header("Entries") + "\n\n")
	if len(entries) == 0 {
		b.WriteString(Dim("No entries.") + "\n")
		return b.String()
	}

	for _, e := range entries {
		rule := domain.Rules[e.Habit]
		b.WriteString(fmt.Sprintf("  %s  %s %-8s %s\n",
			Dim(e.CreatedAt.Format("15:04")),
			CheckMark(e.Satisfied),
			rule.Label,
			StyleFg.Render(FormatValue(e.Value)+" "+rule.Unit)))
	}
	return b.String()
}

// FormatHistory formats the cross-day audit log, newest first.
func FormatHistory(entries []*domain.HabitEntry) string {
	var b strings.Builder

	b.WriteString(Header("History") + "\n\n")
	if len(entries) == 0 {
		b.WriteString(Dim("Nothing logged yet.") + "\n")
		return b.String()
	}

	for _, e := range entries {
		rule := domain.Rules[e.Habit]
		b.WriteString(fmt.Sprintf("  %s  %s  %s %-8s %s\n",
			Dim(fmt.Sprintf("day %3d", e.Day)),
			Dim(e.CreatedAt.Format("2006-01-02 15:04")),
			CheckMark(e.Satisfied),
			rule.Label,
			StyleFg.Render(FormatValue(e.Value)+" "+rule.Unit)))
	}
	return b.String()
}

// FormatMotivation formats the "why I started" text.
func FormatMotivation(text string) string {
	var b strings.Builder
	b.WriteString(Header("Why I started"))
	b.WriteString("\n\n")
	if text == "" {
		b.WriteString(Dim("Not set. Use \"centum why <text>\" to record it.") + "\n")
	} else {
		b.WriteString(StyleFg.Render(text) + "\n")
	}
	return b.String()
}

// FormatRecordOutcome formats the feedback after recording one habit.
func FormatRecordOutcome(out *domain.RecordOutcome) string {
	var b strings.Builder

	rule := domain.Rules[out.Kind]
	b.WriteString(fmt.Sprintf("%s %s = %s %s\n",
		CheckMark(out.HabitDone), rule.Label, FormatValue(out.Value), rule.Unit))

	if out.HabitDone {
		b.WriteString(StyleGreen.Render(out.Message) + "\n")
	} else {
		b.WriteString(StyleYellow.Render(out.Message) + "\n")
	}

	b.WriteString(fmt.Sprintf("Day %d score: %s\n", out.Day,
		ScoreStyle(out.Score).Render(fmt.Sprintf("%d/100", out.Score))))

	if out.DayCompleted {
		if out.Day == domain.ChallengeDays {
			b.WriteString(StyleGreen.Render(fmt.Sprintf("Day %d complete. The challenge is finished! 🎉", out.Day)) + "\n")
		} else {
			b.WriteString(StyleGreen.Render(fmt.Sprintf("Day %d complete! 🎉 On to day %d.", out.Day, out.CurrentDay)) + "\n")
		}
		b.WriteString(StreakLine(out.Streak) + "\n")
	}

	return b.String()
}
