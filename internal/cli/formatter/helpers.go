package formatter

import (
	"fmt"
	"strconv"

	"github.com/nkoval/centum/internal/domain"
)

// FormatValue renders a measurement without trailing zeros: 8, 7.5, 2200.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatRuleTarget renders a rule's threshold: "≥ 7" or "1500-2500".
func FormatRuleTarget(rule domain.HabitRule) string {
	if rule.HasMax {
		return fmt.Sprintf("%s-%s", FormatValue(rule.Min), FormatValue(rule.Max))
	}
	return fmt.Sprintf("≥ %s", FormatValue(rule.Min))
}

// CheckMark renders a completion marker: a green check or a dim cross.
func CheckMark(done bool) string {
	if done {
		return StyleGreen.Render("✓")
	}
	return StyleDim.Render("✗")
}

// StreakLine renders the streak counter with a flame when nonzero.
func StreakLine(streak int) string {
	if streak <= 0 {
		return Dim("No streak yet")
	}
	unit := "days"
	if streak == 1 {
		unit = "day"
	}
	return StyleYellow.Render(fmt.Sprintf("🔥 %d %s streak", streak, unit))
}
