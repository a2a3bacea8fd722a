package cli

import (
	"bytes"
	"testing"

	"github.com/alexanderramin/worklog/internal/repository"
	"github.com/alexanderramin/worklog/internal/service"
	"github.com/alexanderramin/worklog/internal/testutil"
	"github.com/alexanderramin/worklog/internal/timecalc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	manager := service.NewWorklogManager(
		repository.NewSQLiteSessionRepo(database),
		repository.NewSQLiteActionRepo(database),
		repository.NewSQLiteBreakRepo(database),
		testutil.NewTestUoW(database),
		timecalc.NewCalculator(450),
	)
	return &App{
		Worklog:       manager,
		IsInteractive: func() bool { return false },
	}
}

func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCLI_FullDay(t *testing.T) {
	app := newTestApp(t)

	out, err := execute(t, app, "start")
	require.NoError(t, err)
	assert.Contains(t, out, "Work day started.")
	assert.Contains(t, out, "Working")

	out, err = execute(t, app, "stop", "--type", "lunch")
	require.NoError(t, err)
	assert.Contains(t, out, "On a lunch break.")
	assert.Contains(t, out, "On break")

	out, err = execute(t, app, "continue")
	require.NoError(t, err)
	assert.Contains(t, out, "Back to work.")

	out, err = execute(t, app, "end")
	require.NoError(t, err)
	assert.Contains(t, out, "Work day ended.")
}

func TestCLI_StopRejectsUnknownBreakType(t *testing.T) {
	app := newTestApp(t)
	_, err := execute(t, app, "start")
	require.NoError(t, err)

	_, err = execute(t, app, "stop", "--type", "nap")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown break type")
}

func TestCLI_StopDefaultsToGeneralWhenNotInteractive(t *testing.T) {
	app := newTestApp(t)
	_, err := execute(t, app, "start")
	require.NoError(t, err)

	out, err := execute(t, app, "stop")
	require.NoError(t, err)
	assert.Contains(t, out, "On a general break.")
}

func TestCLI_InvalidTransitionSurfacesError(t *testing.T) {
	app := newTestApp(t)

	_, err := execute(t, app, "continue")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrInvalidTransition)
}

func TestCLI_StatusAndHistory(t *testing.T) {
	app := newTestApp(t)
	_, err := execute(t, app, "start")
	require.NoError(t, err)
	_, err = execute(t, app, "stop", "--type", "coffee")
	require.NoError(t, err)

	out, err := execute(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "On break")
	assert.Contains(t, out, "norm")

	out, err = execute(t, app, "history", "--breaks")
	require.NoError(t, err)
	assert.Contains(t, out, "Start day")
	assert.Contains(t, out, "Coffee")
	assert.Contains(t, out, "ongoing")
}

func TestCLI_Revoke(t *testing.T) {
	app := newTestApp(t)

	out, err := execute(t, app, "revoke")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to revoke.")

	_, err = execute(t, app, "start")
	require.NoError(t, err)
	_, err = execute(t, app, "stop", "--type", "lunch")
	require.NoError(t, err)

	out, err = execute(t, app, "revoke")
	require.NoError(t, err)
	assert.Contains(t, out, "Working")

	// Stale id from before the revoke is rejected.
	_, err = execute(t, app, "revoke", "99")
	require.Error(t, err)
}

func TestCLI_ResetRequiresConfirmation(t *testing.T) {
	app := newTestApp(t)
	_, err := execute(t, app, "start")
	require.NoError(t, err)

	_, err = execute(t, app, "reset")
	require.Error(t, err, "non-interactive reset without --yes must refuse")

	out, err := execute(t, app, "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Day reset.")
	assert.Contains(t, out, "Not started")
}
