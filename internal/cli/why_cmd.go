package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/nkoval/centum/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newWhyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "why [text...]",
		Short: "Show or set why you started the challenge",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if len(args) > 0 {
				text := strings.Join(args, " ")
				if err := app.Challenge.SetMotivation(ctx, text); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Motivation saved.")
				return nil
			}

			state, err := app.Challenge.Status(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMotivation(state.Motivation))
			return nil
		},
	}
}
