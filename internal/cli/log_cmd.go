package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/nkoval/centum/internal/cli/formatter"
	"github.com/nkoval/centum/internal/domain"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log <habit> [value]",
		Short: "Record today's value for a habit",
		Long: "Record a habit value for the current challenge day.\n" +
			"Habits: sleep (h), water (glasses), workout (min), study (min), food (kcal).",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseHabitKind(args[0])
			if err != nil {
				return err
			}

			var raw string
			if len(args) == 2 {
				raw = args[1]
			} else {
				raw, err = promptHabitValue(kind)
				if err != nil {
					return err
				}
			}

			out, err := app.Challenge.RecordHabit(context.Background(), kind, raw)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecordOutcome(out))
			return nil
		},
	}
	return cmd
}

// promptHabitValue asks for the value interactively when it was not
// given on the command line.
func promptHabitValue(kind domain.HabitKind) (string, error) {
	rule := domain.Rules[kind]

	var raw string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("%s (%s)", rule.Label, rule.Unit)).
				Placeholder(formatter.FormatRuleTarget(rule)).
				Value(&raw).
				Validate(func(s string) error {
					_, err := domain.ParseMeasurement(s)
					return err
				}),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", err
	}
	return raw, nil
}
