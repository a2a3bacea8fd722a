package domain

import "time"

// WorkSession is the aggregate root for one calendar day of tracking.
// Date is the local calendar day in ISO form (2006-01-02) and is unique
// per session.
type WorkSession struct {
	ID        string
	Date      string
	StartTime *time.Time
	EndTime   *time.Time
	Status    State
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Started reports whether the session has recorded a day start.
func (s *WorkSession) Started() bool {
	return s.StartTime != nil
}

// Ended reports whether the session has been closed by an end-day action.
func (s *WorkSession) Ended() bool {
	return s.EndTime != nil
}
