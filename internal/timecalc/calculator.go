// Package timecalc converts a session's recorded actions and breaks
// into durations and derived metrics. All functions are pure; the only
// configuration is the injected daily work norm.
package timecalc

import (
	"fmt"
	"time"

	"github.com/alexanderramin/worklog/internal/domain"
)

// DefaultWorkNormMinutes is the default daily norm (7.5 hours).
const DefaultWorkNormMinutes = 450

// Calculator derives time metrics against a configurable work norm.
type Calculator struct {
	NormMinutes int
}

// NewCalculator returns a Calculator with the given norm, falling back
// to the default when normMinutes is not positive.
func NewCalculator(normMinutes int) *Calculator {
	if normMinutes <= 0 {
		normMinutes = DefaultWorkNormMinutes
	}
	return &Calculator{NormMinutes: normMinutes}
}

// SessionWorkSeconds sums the elapsed time between each work resumption
// marker (start_day, continue) and the next suspension marker (stop,
// end_day). An interval still open at the end of the log contributes
// nothing; historical totals stay deterministic and replayable.
// Intervals with an unparseable endpoint are excluded and reported in
// the returned warnings instead of being counted as zero.
func (c *Calculator) SessionWorkSeconds(actions []*domain.Action) (int, []string) {
	total := 0
	var warnings []string
	var openedAt *domain.Action

	for _, a := range actions {
		switch {
		case a.ResumesWork():
			openedAt = a
		case a.SuspendsWork():
			if openedAt == nil {
				continue
			}
			if openedAt.Timestamp.IsZero() || a.Timestamp.IsZero() {
				warnings = append(warnings, fmt.Sprintf(
					"work interval between actions %d and %d has an unknown timestamp; excluded from totals",
					openedAt.ID, a.ID))
				openedAt = nil
				continue
			}
			d := int(a.Timestamp.Sub(openedAt.Timestamp).Seconds())
			if d > 0 {
				total += d
			}
			openedAt = nil
		case a.Type == domain.ActionResetDay:
			total = 0
			openedAt = nil
		}
	}
	return total, warnings
}

// CurrentSessionSeconds measures the open work interval, if any,
// against the explicit now. Callers opt in to non-determinism here;
// nothing else in the calculator reads the clock.
func (c *Calculator) CurrentSessionSeconds(actions []*domain.Action, now time.Time) int {
	var openedAt *domain.Action
	for _, a := range actions {
		switch {
		case a.ResumesWork():
			openedAt = a
		case a.SuspendsWork(), a.Type == domain.ActionResetDay:
			openedAt = nil
		}
	}
	if openedAt == nil || openedAt.Timestamp.IsZero() {
		return 0
	}
	d := int(now.Sub(openedAt.Timestamp).Seconds())
	if d < 0 {
		return 0
	}
	return d
}

// TotalBreakSeconds sums closed breaks. An open break is still in
// progress and not yet accounted.
func (c *Calculator) TotalBreakSeconds(breaks []*domain.BreakPeriod) int {
	total := 0
	for _, b := range breaks {
		total += b.Seconds()
	}
	return total
}

// Calculate derives the full metrics bundle from historical data only.
// Total work time is the gross span: the net interval sum plus closed
// breaks. Productive time then reduces to the net sum once breaks are
// subtracted, so a day spanning 8h with a 30m lunch reports 8h worked
// and 7h30m productive.
func (c *Calculator) Calculate(actions []*domain.Action, breaks []*domain.BreakPeriod) domain.TimeCalculation {
	net, warnings := c.SessionWorkSeconds(actions)
	breakSeconds := c.TotalBreakSeconds(breaks)
	calc := domain.DeriveCalculation(net+breakSeconds, breakSeconds, c.NormMinutes)
	calc.Warnings = warnings
	return calc
}

// CalculateCurrent is Calculate plus the open work interval measured
// against now. The open tail counts toward work and productive time so
// live surfaces can show a running total.
func (c *Calculator) CalculateCurrent(actions []*domain.Action, breaks []*domain.BreakPeriod, now time.Time) domain.TimeCalculation {
	net, warnings := c.SessionWorkSeconds(actions)
	current := c.CurrentSessionSeconds(actions, now)
	breakSeconds := c.TotalBreakSeconds(breaks)
	calc := domain.DeriveCalculation(net+current+breakSeconds, breakSeconds, c.NormMinutes)
	calc.CurrentSessionSeconds = current
	calc.Warnings = warnings
	return calc
}
