package testutil

import (
	"sync"
	"time"

	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/google/uuid"
)

// BaseTime is the reference instant fixtures count from: a Monday
// morning at 09:00 UTC.
var BaseTime = time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)

// NewTestSession builds a not-started session for BaseTime's date.
func NewTestSession() *domain.WorkSession {
	return &domain.WorkSession{
		ID:        uuid.New().String(),
		Date:      BaseTime.Format("2006-01-02"),
		Status:    domain.StateNotStarted,
		CreatedAt: BaseTime,
		UpdatedAt: BaseTime,
	}
}

// NewTestAction builds an unpersisted action at the given offset from
// BaseTime.
func NewTestAction(sessionID string, tp domain.ActionType, offset time.Duration) *domain.Action {
	at := BaseTime.Add(offset)
	return &domain.Action{
		SessionID: sessionID,
		Type:      tp,
		Timestamp: at,
		CreatedAt: at,
	}
}

// NewTestBreak builds an open break of the given type starting at the
// given offset from BaseTime.
func NewTestBreak(sessionID string, bt domain.BreakType, offset time.Duration) *domain.BreakPeriod {
	at := BaseTime.Add(offset)
	return &domain.BreakPeriod{
		SessionID: sessionID,
		BreakType: bt,
		StartTime: at,
		CreatedAt: at,
	}
}

// FakeClock is a controllable clock for deterministic service tests.
// Now is safe for concurrent use; tests advance it between commands.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock starts a clock at the given instant.
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

// Now returns the current fake instant.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set jumps the clock to the given instant.
func (c *FakeClock) Set(ts time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = ts
}
