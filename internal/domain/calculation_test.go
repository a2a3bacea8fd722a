package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveCalculation_Invariants(t *testing.T) {
	cases := []struct {
		name       string
		work       int
		brk        int
		norm       int
		productive int
		remaining  int
		overtime   int
		isOvertime bool
	}{
		{"empty day", 0, 0, 450, 0, 450 * 60, 0, false},
		{"under norm", 4 * 3600, 1800, 450, 4*3600 - 1800, 450*60 - (4*3600 - 1800), 0, false},
		{"exactly at norm", 8 * 3600, 1800, 450, 27000, 0, 0, false},
		{"over norm", 9 * 3600, 0, 450, 9 * 3600, 0, 9*3600 - 27000, true},
		{"breaks exceed work", 3600, 7200, 450, 0, 27000, 0, false},
		{"zero norm", 3600, 0, 0, 3600, 0, 3600, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := DeriveCalculation(tc.work, tc.brk, tc.norm)
			assert.Equal(t, tc.productive, c.ProductiveSeconds)
			assert.Equal(t, tc.remaining, c.RemainingSeconds)
			assert.Equal(t, tc.overtime, c.OvertimeSeconds)
			assert.Equal(t, tc.isOvertime, c.IsOvertime)
			assert.Equal(t, tc.norm, c.WorkNormMinutes)
		})
	}
}

func TestDeriveCalculation_ClampsNegativeInputs(t *testing.T) {
	c := DeriveCalculation(-100, -200, 450)
	assert.Equal(t, 0, c.TotalWorkSeconds)
	assert.Equal(t, 0, c.TotalBreakSeconds)
	assert.Equal(t, 0, c.ProductiveSeconds)
	assert.Equal(t, 450*60, c.RemainingSeconds)
	assert.False(t, c.IsOvertime)
}

func TestDeriveCalculation_MinuteViews(t *testing.T) {
	c := DeriveCalculation(8*3600, 1800, 450)
	assert.Equal(t, 480, c.TotalWorkMinutes())
	assert.Equal(t, 30, c.TotalBreakMinutes())
	assert.Equal(t, 450, c.ProductiveMinutes())
	assert.Equal(t, 0, c.RemainingMinutes())
	assert.Equal(t, 0, c.OvertimeMinutes())
}

func TestTrayStatusFor(t *testing.T) {
	overtime := TimeCalculation{IsOvertime: true}
	within := TimeCalculation{}

	assert.Equal(t, TrayIdle, TrayStatusFor(StateNotStarted, within))
	assert.Equal(t, TrayWorking, TrayStatusFor(StateWorking, within))
	assert.Equal(t, TrayOvertime, TrayStatusFor(StateWorking, overtime))
	assert.Equal(t, TrayOnBreak, TrayStatusFor(StateOnBreak, overtime))
	assert.Equal(t, TrayIdle, TrayStatusFor(StateDayEnded, within))
}
