package domain

import "time"

// Action is one immutable command record in a session's log. ID is the
// store-assigned auto-increment value and the total ordering key within
// a session. Timestamp carries wall-clock skew as recorded; it is
// non-decreasing with ID under normal operation but never corrected.
//
// A zero Timestamp means the stored value could not be parsed. Such
// actions are kept in the log for ordering but their intervals are
// excluded from totals with a warning.
type Action struct {
	ID        int64
	SessionID string
	Type      ActionType
	BreakType *BreakType
	Timestamp time.Time
	CreatedAt time.Time
}

// ResumesWork reports whether the action opens a working interval.
func (a *Action) ResumesWork() bool {
	return a.Type == ActionStartDay || a.Type == ActionContinue
}

// SuspendsWork reports whether the action closes a working interval.
func (a *Action) SuspendsWork() bool {
	return a.Type == ActionStop || a.Type == ActionEndDay
}

// ReplayState reduces an ordered action log to the session state it
// produces, starting from NOT_STARTED. State is always a pure function
// of the surviving log; revoke relies on this to reconstruct state as
// if the removed action had never happened.
func ReplayState(actions []*Action) State {
	state := StateNotStarted
	for _, a := range actions {
		switch a.Type {
		case ActionStartDay:
			state = StateWorking
		case ActionStop:
			state = StateOnBreak
		case ActionContinue:
			state = StateWorking
		case ActionEndDay:
			state = StateDayEnded
		case ActionResetDay:
			state = StateNotStarted
		}
	}
	return state
}
