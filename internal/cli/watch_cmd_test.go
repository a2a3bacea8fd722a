package cli

import (
	"testing"

	"github.com/alexanderramin/worklog/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchModel_ShowsInitialSnapshot(t *testing.T) {
	app := newTestApp(t)
	d := teatest.New(t, newWatchModel(app))

	view := d.View()
	assert.Contains(t, view, "Not started")
	assert.Contains(t, view, "IDLE")
	assert.Contains(t, view, "start day")
}

func TestWatchModel_KeysDriveTheDay(t *testing.T) {
	app := newTestApp(t)
	d := teatest.New(t, newWatchModel(app))

	d.PressKey('s')
	assert.Contains(t, d.View(), "Working")

	d.PressKey('b')
	assert.Contains(t, d.View(), "ON BREAK")

	d.PressKey('c')
	assert.Contains(t, d.View(), "WORKING")

	d.PressKey('e')
	assert.Contains(t, d.View(), "Day ended")
}

func TestWatchModel_InvalidTransitionShowsError(t *testing.T) {
	app := newTestApp(t)
	d := teatest.New(t, newWatchModel(app))

	// Continue before starting the day is rejected but keeps running.
	d.PressKey('c')
	view := d.View()
	assert.Contains(t, view, "invalid transition")
	assert.False(t, d.Quitting)

	// A successful command clears the error.
	d.PressKey('s')
	assert.NotContains(t, d.View(), "invalid transition")
}

func TestWatchModel_UndoRevertsLastAction(t *testing.T) {
	app := newTestApp(t)
	d := teatest.New(t, newWatchModel(app))

	d.PressKey('s')
	d.PressKey('b')
	require.Contains(t, d.View(), "ON BREAK")

	d.PressKey('u')
	assert.Contains(t, d.View(), "WORKING")

	// Undo with an empty log is a no-op.
	d.PressKey('u')
	d.PressKey('u')
	assert.Contains(t, d.View(), "Not started")
	d.PressKey('u')
	assert.Contains(t, d.View(), "Not started")
}

func TestWatchModel_QuitKey(t *testing.T) {
	app := newTestApp(t)
	d := teatest.New(t, newWatchModel(app))

	d.PressKey('q')
	assert.True(t, d.Quitting)
}
