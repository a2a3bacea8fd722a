package domain

import "time"

// BreakPeriod is a categorized interval during which work is suspended.
// EndTime and DurationMinutes stay nil while the break is open; at most
// one open break exists per session.
type BreakPeriod struct {
	ID              int64
	SessionID       string
	BreakType       BreakType
	StartTime       time.Time
	EndTime         *time.Time
	DurationMinutes *int
	CreatedAt       time.Time
}

// Open reports whether the break is still in progress.
func (b *BreakPeriod) Open() bool {
	return b.EndTime == nil
}

// Seconds returns the closed break's length in whole seconds, clamped
// at zero. Open breaks contribute nothing to historical totals.
func (b *BreakPeriod) Seconds() int {
	if b.EndTime == nil {
		return 0
	}
	d := int(b.EndTime.Sub(b.StartTime).Seconds())
	if d < 0 {
		return 0
	}
	return d
}
