package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/nkoval/centum/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDayCmd(app *App) *cobra.Command {
	var showEntries bool

	cmd := &cobra.Command{
		Use:   "day <number>",
		Short: "Show the details of one challenge day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("day must be a number between 1 and 100, got %q", args[0])
			}

			ctx := context.Background()
			rec, err := app.Challenge.Day(ctx, day)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDay(day, rec))

			if showEntries {
				entries, err := app.Challenge.DayEntries(ctx, day)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEntries(entries))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showEntries, "entries", false, "Also list every value recorded for the day")

	return cmd
}
