package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/worklog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRevokeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "revoke [action-id]",
		Short: "Undo the most recent action",
		Long: "Removes the newest action from today's log and restores the " +
			"state the session was in before it. Only the newest action can " +
			"be revoked; pass its id to guard against races, or no argument " +
			"to revoke whatever is newest.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			revokable, err := app.Worklog.RevokableActions(ctx)
			if err != nil {
				return err
			}
			if len(revokable) == 0 {
				cmd.Println(formatter.Dim("Nothing to revoke."))
				return nil
			}

			actionID := revokable[0].ID
			if len(args) == 1 {
				actionID, err = strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid action id %q", args[0])
				}
			}

			if err := app.Worklog.Revoke(ctx, actionID); err != nil {
				return err
			}

			state, err := app.Worklog.CurrentState(ctx)
			if err != nil {
				return err
			}
			cmd.Println("Revoked action", actionID, "- now", formatter.StatePill(state))
			return nil
		},
	}
}
