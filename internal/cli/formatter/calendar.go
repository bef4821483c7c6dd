package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nkoval/centum/internal/domain"
)

const calendarColumns = 10

// dayCellState classifies a calendar cell.
type dayCellState int

const (
	cellFuture dayCellState = iota
	cellCurrent
	cellCompleted
	cellMissed
)

// classifyDay determines the cell state for a day. A day before the
// current pointer that is not completed counts as missed; it breaks
// the streak and stays red.
func classifyDay(state *domain.ChallengeState, day int) dayCellState {
	rec := state.Day(day)
	if rec != nil && rec.Completed {
		return cellCompleted
	}
	switch {
	case day < state.CurrentDay:
		return cellMissed
	case day == state.CurrentDay:
		return cellCurrent
	default:
		return cellFuture
	}
}

func cellStyle(s dayCellState) lipgloss.Style {
	switch s {
	case cellCompleted:
		return StyleGreen
	case cellMissed:
		return StyleRed
	case cellCurrent:
		return StyleYellow
	default:
		return StyleDim
	}
}

// FormatCalendar renders the 100-day challenge as a 10x10 grid of day
// numbers: completed green, missed red, the current day yellow, future
// days dim.
func FormatCalendar(state *domain.ChallengeState) string {
	var b strings.Builder

	b.WriteString(Header("Calendar"))
	b.WriteString("\n\n")

	for day := 1; day <= domain.ChallengeDays; day++ {
		cell := fmt.Sprintf("%3d", day)
		b.WriteString(cellStyle(classifyDay(state, day)).Render(cell))
		if day%calendarColumns == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s done   %s missed   %s today   %s upcoming\n",
		StyleGreen.Render("■"),
		StyleRed.Render("■"),
		StyleYellow.Render("■"),
		StyleDim.Render("■")))

	return b.String()
}
