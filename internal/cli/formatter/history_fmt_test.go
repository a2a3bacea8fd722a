package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatHistory_MarksRevokableTail(t *testing.T) {
	ts := time.Date(2025, 6, 16, 9, 0, 0, 0, time.Local)
	lunch := domain.BreakLunch
	actions := []*domain.Action{
		{ID: 1, Type: domain.ActionStartDay, Timestamp: ts},
		{ID: 2, Type: domain.ActionStop, BreakType: &lunch, Timestamp: ts.Add(3 * time.Hour)},
	}

	out := FormatHistory(actions, 2)
	assert.Contains(t, out, "Start day")
	assert.Contains(t, out, "Stop")
	assert.Contains(t, out, "Lunch")
	assert.Contains(t, out, "↩")
}

func TestFormatHistory_Empty(t *testing.T) {
	assert.Contains(t, FormatHistory(nil, 0), "No actions recorded today.")
}

func TestFormatBreaks(t *testing.T) {
	start := time.Date(2025, 6, 16, 12, 0, 0, 0, time.Local)
	end := start.Add(30 * time.Minute)
	breaks := []*domain.BreakPeriod{
		{ID: 1, BreakType: domain.BreakLunch, StartTime: start, EndTime: &end},
		{ID: 2, BreakType: domain.BreakCoffee, StartTime: end.Add(time.Hour)},
	}

	out := FormatBreaks(breaks)
	assert.Contains(t, out, "Lunch")
	assert.Contains(t, out, "00:30:00")
	assert.Contains(t, out, "Coffee")
	assert.Contains(t, out, "ongoing")

	assert.Contains(t, FormatBreaks(nil), "No breaks today.")
}
