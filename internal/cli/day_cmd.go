package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/worklog/internal/cli/formatter"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the work day",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Worklog.StartDay(context.Background())
			if err != nil {
				return err
			}
			cmd.Println(formatter.FormatCommandResult("Work day started.", res))
			return nil
		},
	}
}

func newStopCmd(app *App) *cobra.Command {
	var breakType string

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop working and take a break",
		RunE: func(cmd *cobra.Command, args []string) error {
			bt, err := resolveBreakType(app, breakType)
			if err != nil {
				return err
			}
			res, err := app.Worklog.StopWork(context.Background(), bt)
			if err != nil {
				return err
			}
			cmd.Println(formatter.FormatCommandResult(
				fmt.Sprintf("On a %s break.", bt), res))
			return nil
		},
	}
	addBreakTypeFlag(cmd.Flags(), &breakType)
	return cmd
}

func newContinueCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "continue",
		Short: "Continue working after a break",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Worklog.ContinueWork(context.Background())
			if err != nil {
				return err
			}
			cmd.Println(formatter.FormatCommandResult("Back to work.", res))
			return nil
		},
	}
}

func newEndCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "end",
		Short: "End the work day",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Worklog.EndDay(context.Background())
			if err != nil {
				return err
			}
			cmd.Println(formatter.FormatCommandResult("Work day ended.", res))
			return nil
		},
	}
}

func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard today's session entirely",
		Long:  "Deletes today's session with all its actions and breaks. This cannot be undone.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				if !app.interactive() {
					return fmt.Errorf("refusing to reset without --yes")
				}
				var confirmed bool
				form := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title("Discard today's session and all recorded data?").
						Value(&confirmed),
				))
				if err := form.Run(); err != nil {
					return err
				}
				if !confirmed {
					cmd.Println("Aborted.")
					return nil
				}
			}
			res, err := app.Worklog.ResetDay(context.Background())
			if err != nil {
				return err
			}
			cmd.Println(formatter.FormatCommandResult("Day reset.", res))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// addBreakTypeFlag registers the shared --type flag on a flag set.
func addBreakTypeFlag(flags *pflag.FlagSet, target *string) {
	flags.StringVarP(target, "type", "t", "", "break type: lunch, coffee or general")
}

// resolveBreakType validates the --type flag, falling back to an
// interactive picker on a terminal and to a general break otherwise.
func resolveBreakType(app *App, flag string) (domain.BreakType, error) {
	if flag != "" {
		if !domain.ValidBreakTypes[flag] {
			return "", fmt.Errorf("unknown break type %q (want lunch, coffee or general)", flag)
		}
		return domain.BreakType(flag), nil
	}
	if !app.interactive() {
		return domain.BreakGeneral, nil
	}

	choice := string(domain.BreakGeneral)
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Break type").
			Options(
				huh.NewOption("Lunch", string(domain.BreakLunch)),
				huh.NewOption("Coffee", string(domain.BreakCoffee)),
				huh.NewOption("General", string(domain.BreakGeneral)),
			).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return domain.BreakType(choice), nil
}
