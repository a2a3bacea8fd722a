package cli

import (
	"github.com/alexanderramin/worklog/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the services used by CLI commands.
type App struct {
	Worklog service.WorklogService

	// IsInteractive reports whether stdin is attached to a terminal;
	// interactive affordances (break-type picker, live view) are gated
	// on it.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "worklog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "worklog",
		Short: "Track your work day: sessions, breaks and overtime",
	}

	root.AddCommand(
		newStartCmd(app),
		newStopCmd(app),
		newContinueCmd(app),
		newEndCmd(app),
		newResetCmd(app),
		newStatusCmd(app),
		newHistoryCmd(app),
		newRevokeCmd(app),
		newWatchCmd(app),
	)

	return root
}
