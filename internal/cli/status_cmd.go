package cli

import (
	"context"

	"github.com/alexanderramin/worklog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show today's state and time accounting",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			state, err := app.Worklog.CurrentState(ctx)
			if err != nil {
				return err
			}
			session, err := app.Worklog.CurrentSession(ctx)
			if err != nil {
				return err
			}
			calc, err := app.Worklog.CurrentCalculations(ctx)
			if err != nil {
				return err
			}

			cmd.Println(formatter.FormatStatus(session, state, calc))
			return nil
		},
	}
}
