package cli

import (
	"github.com/nkoval/centum/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Challenge service.ChallengeService

	// IsInteractive reports whether stdin is attached to a terminal;
	// the bare "centum" invocation opens the dashboard TUI only then.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "centum" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "centum",
		Short: "100-day habit challenge tracker",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runDashboard(app)
			}
			return runStatus(cmd, app, false)
		},
	}

	root.AddCommand(
		newLogCmd(app),
		newStatusCmd(app),
		newDayCmd(app),
		newHistoryCmd(app),
		newCalendarCmd(app),
		newWhyCmd(app),
		newRestartCmd(app),
	)

	return root
}
