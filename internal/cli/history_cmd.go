package cli

import (
	"context"

	"github.com/alexanderramin/worklog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var withBreaks bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show today's action log",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			actions, err := app.Worklog.ActionHistory(ctx)
			if err != nil {
				return err
			}
			revokable, err := app.Worklog.RevokableActions(ctx)
			if err != nil {
				return err
			}
			var revokableID int64
			if len(revokable) > 0 {
				revokableID = revokable[0].ID
			}

			cmd.Println(formatter.FormatHistory(actions, revokableID))

			if withBreaks {
				breaks, err := app.Worklog.ListBreaks(ctx)
				if err != nil {
					return err
				}
				cmd.Println()
				cmd.Println(formatter.FormatBreaks(breaks))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&withBreaks, "breaks", "b", false, "also list today's break periods")
	return cmd
}
