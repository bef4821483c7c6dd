package cli

import (
	"context"
	"fmt"

	"github.com/nkoval/centum/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "calendar",
		Short: "Show the 100-day calendar grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := app.Challenge.Status(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCalendar(state))
			return nil
		},
	}
}
