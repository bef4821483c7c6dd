package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/nkoval/centum/internal/domain"
	"github.com/spf13/cobra"
)

func newRestartCmd(app *App) *cobra.Command {
	var keepWhy bool
	var yes bool

	cmd := &cobra.Command{
		Use:   "restart",
		Short: "Discard all progress and start the challenge over",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				confirmed, err := confirmRestart()
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Restart cancelled.")
					return nil
				}
			}

			fresh, err := app.Challenge.Restart(context.Background(), keepWhy)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Challenge restarted. Day %d of %d, streak 0.\n", fresh.CurrentDay, domain.ChallengeDays)
			return nil
		},
	}

	cmd.Flags().BoolVar(&keepWhy, "keep-why", false, "Keep the motivation text")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func confirmRestart() (bool, error) {
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Restart the challenge?").
				Description("All 100 days of progress will be discarded. This cannot be undone.").
				Affirmative("Restart").
				Negative("Cancel").
				Value(&confirmed),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
