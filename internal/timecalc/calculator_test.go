package timecalc

import (
	"testing"
	"time"

	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)

func action(id int64, tp domain.ActionType, at time.Time) *domain.Action {
	return &domain.Action{ID: id, Type: tp, Timestamp: at}
}

func closedBreak(start time.Time, minutes int) *domain.BreakPeriod {
	end := start.Add(time.Duration(minutes) * time.Minute)
	return &domain.BreakPeriod{StartTime: start, EndTime: &end, DurationMinutes: &minutes}
}

func TestSessionWorkSeconds_ClosedDay(t *testing.T) {
	calc := NewCalculator(450)
	actions := []*domain.Action{
		action(1, domain.ActionStartDay, t0),
		action(2, domain.ActionStop, t0.Add(2*time.Hour)),
		action(3, domain.ActionContinue, t0.Add(2*time.Hour+30*time.Minute)),
		action(4, domain.ActionEndDay, t0.Add(8*time.Hour)),
	}
	work, warnings := calc.SessionWorkSeconds(actions)
	assert.Empty(t, warnings)
	// 2h before the break plus 5h30m after it.
	assert.Equal(t, 2*3600+5*3600+1800, work)
}

func TestSessionWorkSeconds_OpenTailExcluded(t *testing.T) {
	calc := NewCalculator(450)
	actions := []*domain.Action{
		action(1, domain.ActionStartDay, t0),
		action(2, domain.ActionStop, t0.Add(time.Hour)),
		action(3, domain.ActionContinue, t0.Add(90*time.Minute)),
	}
	work, _ := calc.SessionWorkSeconds(actions)
	assert.Equal(t, 3600, work, "open interval after continue must not count implicitly")

	assert.Equal(t, 1800, calc.CurrentSessionSeconds(actions, t0.Add(2*time.Hour)),
		"open interval counts only against an explicit now")
}

func TestSessionWorkSeconds_UnknownTimestampExcludedWithWarning(t *testing.T) {
	calc := NewCalculator(450)
	actions := []*domain.Action{
		action(1, domain.ActionStartDay, t0),
		action(2, domain.ActionStop, time.Time{}), // unparseable in store
		action(3, domain.ActionContinue, t0.Add(2*time.Hour)),
		action(4, domain.ActionEndDay, t0.Add(3*time.Hour)),
	}
	work, warnings := calc.SessionWorkSeconds(actions)
	assert.Equal(t, 3600, work, "interval with unknown endpoint is excluded, not zeroed")
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "unknown timestamp")
}

func TestCurrentSessionSeconds_ClockBehindStartClampsToZero(t *testing.T) {
	calc := NewCalculator(450)
	actions := []*domain.Action{action(1, domain.ActionStartDay, t0)}
	assert.Equal(t, 0, calc.CurrentSessionSeconds(actions, t0.Add(-time.Minute)))
}

func TestTotalBreakSeconds(t *testing.T) {
	calc := NewCalculator(450)
	open := &domain.BreakPeriod{StartTime: t0}
	breaks := []*domain.BreakPeriod{
		closedBreak(t0.Add(2*time.Hour), 30),
		closedBreak(t0.Add(5*time.Hour), 15),
		open,
	}
	assert.Equal(t, 45*60, calc.TotalBreakSeconds(breaks), "open break contributes 0")
}

func TestCalculate_ScenarioExactlyAtNorm(t *testing.T) {
	// start 09:00, lunch 11:00-11:30, end 17:00 with a 450-minute norm.
	calc := NewCalculator(450)
	actions := []*domain.Action{
		action(1, domain.ActionStartDay, t0),
		action(2, domain.ActionStop, t0.Add(2*time.Hour)),
		action(3, domain.ActionContinue, t0.Add(2*time.Hour+30*time.Minute)),
		action(4, domain.ActionEndDay, t0.Add(8*time.Hour)),
	}
	breaks := []*domain.BreakPeriod{closedBreak(t0.Add(2*time.Hour), 30)}

	got := calc.Calculate(actions, breaks)
	assert.Equal(t, 8*3600, got.TotalWorkSeconds)
	assert.Equal(t, 1800, got.TotalBreakSeconds)
	assert.Equal(t, 27000, got.ProductiveSeconds, "8h minus 30m lunch")
	assert.Equal(t, 0, got.RemainingSeconds, "exactly at the 450-minute norm")
	assert.Equal(t, 0, got.OvertimeSeconds)
	assert.False(t, got.IsOvertime)
	assert.Equal(t, 450, got.WorkNormMinutes)
}

func TestCalculateCurrent_IncludesOpenInterval(t *testing.T) {
	calc := NewCalculator(450)
	actions := []*domain.Action{action(1, domain.ActionStartDay, t0)}
	got := calc.CalculateCurrent(actions, nil, t0.Add(30*time.Minute))
	assert.Equal(t, 1800, got.CurrentSessionSeconds)
	assert.Equal(t, 1800, got.TotalWorkSeconds)
	assert.Equal(t, 1800, got.ProductiveSeconds)
}

func TestNewCalculator_DefaultsNorm(t *testing.T) {
	assert.Equal(t, DefaultWorkNormMinutes, NewCalculator(0).NormMinutes)
	assert.Equal(t, 300, NewCalculator(300).NormMinutes)
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "00:00:00"},
		{3661, "01:01:01"},
		{-5, "00:00:00"},
		{27000, "07:30:00"},
		{100*3600 + 59, "100:00:59"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatDuration(tc.seconds), "seconds=%d", tc.seconds)
	}
}

func TestParseTime(t *testing.T) {
	withOffset, err := ParseTime("2025-06-16T09:00:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, 7, withOffset.UTC().Hour())

	local, err := ParseTime("2025-06-16T09:00:00")
	require.NoError(t, err)
	assert.Equal(t, 9, local.Hour())

	_, err = ParseTime("not-a-timestamp")
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "not-a-timestamp", perr.Value)
}
