package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/worklog/internal/cli/formatter"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/alexanderramin/worklog/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *App) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Live view of today's session, refreshed every second",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("watch needs a terminal; use 'status' instead")
			}

			model := newWatchModel(app)
			p := tea.NewProgram(model, tea.WithAltScreen())

			ticker := service.NewTicker(interval)
			ticker.SetCallback(func() { p.Send(refreshMsg{}) })
			ticker.Start()
			defer ticker.Stop()

			_, err := p.Run()
			return err
		},
	}
	cmd.Flags().DurationVarP(&interval, "interval", "i", time.Second, "refresh interval")
	return cmd
}

// refreshMsg is emitted by the ticker to trigger a reload.
type refreshMsg struct{}

// snapshotMsg carries a freshly loaded view of today's session.
type snapshotMsg struct {
	state   domain.State
	session *domain.WorkSession
	calc    domain.TimeCalculation
	err     error
}

type watchKeyMap struct {
	Start    key.Binding
	Break    key.Binding
	Continue key.Binding
	End      key.Binding
	Undo     key.Binding
	Quit     key.Binding
}

func (k watchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Break, k.Continue, k.End, k.Undo, k.Quit}
}

func (k watchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var watchKeys = watchKeyMap{
	Start:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start day")),
	Break:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "break")),
	Continue: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "continue")),
	End:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "end day")),
	Undo:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// watchModel is the bubbletea model behind the watch command. It holds
// no session state of its own; every frame is re-derived from the
// service.
type watchModel struct {
	app  *App
	keys watchKeyMap
	help help.Model

	state   domain.State
	session *domain.WorkSession
	calc    domain.TimeCalculation
	lastErr error
}

func newWatchModel(app *App) watchModel {
	return watchModel{
		app:   app,
		keys:  watchKeys,
		help:  help.New(),
		state: domain.StateNotStarted,
	}
}

func (m watchModel) Init() tea.Cmd {
	return m.loadSnapshot()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		return m, m.loadSnapshot()

	case snapshotMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.state = msg.state
		m.session = msg.session
		m.calc = msg.calc
		m.lastErr = nil
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Start):
			return m, m.runCommand(func(ctx context.Context) error {
				_, err := m.app.Worklog.StartDay(ctx)
				return err
			})
		case key.Matches(msg, m.keys.Break):
			return m, m.runCommand(func(ctx context.Context) error {
				_, err := m.app.Worklog.StopWork(ctx, domain.BreakGeneral)
				return err
			})
		case key.Matches(msg, m.keys.Continue):
			return m, m.runCommand(func(ctx context.Context) error {
				_, err := m.app.Worklog.ContinueWork(ctx)
				return err
			})
		case key.Matches(msg, m.keys.End):
			return m, m.runCommand(func(ctx context.Context) error {
				_, err := m.app.Worklog.EndDay(ctx)
				return err
			})
		case key.Matches(msg, m.keys.Undo):
			return m, m.runCommand(func(ctx context.Context) error {
				revokable, err := m.app.Worklog.RevokableActions(ctx)
				if err != nil || len(revokable) == 0 {
					return err
				}
				return m.app.Worklog.Revoke(ctx, revokable[0].ID)
			})
		}
	}
	return m, nil
}

func (m watchModel) View() string {
	view := formatter.FormatStatus(m.session, m.state, m.calc)
	if m.lastErr != nil {
		view += "\n" + formatter.StyleRed.Render("  "+m.lastErr.Error())
	}
	view += "\n" + m.help.View(m.keys)
	return view
}

func (m watchModel) loadSnapshot() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		state, err := m.app.Worklog.CurrentState(ctx)
		if err != nil {
			return snapshotMsg{err: err}
		}
		session, err := m.app.Worklog.CurrentSession(ctx)
		if err != nil {
			return snapshotMsg{err: err}
		}
		calc, err := m.app.Worklog.CurrentCalculations(ctx)
		if err != nil {
			return snapshotMsg{err: err}
		}
		return snapshotMsg{state: state, session: session, calc: calc}
	}
}

// runCommand executes a session command and reloads the snapshot.
// Transition errors are surfaced in the view instead of quitting.
func (m watchModel) runCommand(fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		if err := fn(context.Background()); err != nil {
			return snapshotMsg{err: err}
		}
		return refreshMsg{}
	}
}
