package cli

import (
	"context"
	"fmt"

	"github.com/nkoval/centum/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var recalc bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current day, score and streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, app, recalc)
		},
	}

	cmd.Flags().BoolVar(&recalc, "recalc", false, "Force the backward streak recomputation before printing")

	return cmd
}

func runStatus(cmd *cobra.Command, app *App, recalc bool) error {
	ctx := context.Background()

	if recalc {
		if _, err := app.Challenge.RecomputeStreak(ctx); err != nil {
			return err
		}
	}

	state, err := app.Challenge.Status(ctx)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStatus(state))
	return nil
}
