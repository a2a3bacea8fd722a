package domain

// State is the lifecycle state of a work day.
type State string

const (
	StateNotStarted State = "not_started"
	StateWorking    State = "working"
	StateOnBreak    State = "on_break"
	StateDayEnded   State = "day_ended"
)

type ActionType string

const (
	ActionStartDay ActionType = "start_day"
	ActionStop     ActionType = "stop"
	ActionContinue ActionType = "continue"
	ActionEndDay   ActionType = "end_day"
	ActionResetDay ActionType = "reset_day"
)

type BreakType string

const (
	BreakLunch   BreakType = "lunch"
	BreakCoffee  BreakType = "coffee"
	BreakGeneral BreakType = "general"
)

// ValidBreakTypes is the canonical set of accepted break type strings.
var ValidBreakTypes = map[string]bool{
	"lunch": true, "coffee": true, "general": true,
}

// TrayStatus is the compact status variant shown by tray-like surfaces.
// It is always derived, never stored.
type TrayStatus string

const (
	TrayIdle     TrayStatus = "idle"
	TrayWorking  TrayStatus = "working"
	TrayOnBreak  TrayStatus = "on_break"
	TrayOvertime TrayStatus = "overtime"
)

// TrayStatusFor maps live state plus calculations onto a tray status.
func TrayStatusFor(state State, calc TimeCalculation) TrayStatus {
	switch state {
	case StateWorking:
		if calc.IsOvertime {
			return TrayOvertime
		}
		return TrayWorking
	case StateOnBreak:
		return TrayOnBreak
	default:
		return TrayIdle
	}
}

// AllowedActions returns the command types legal in the given state.
// ResetDay is allowed from any state and is intentionally excluded here;
// callers treat it as unconditional.
func AllowedActions(state State) []ActionType {
	switch state {
	case StateNotStarted:
		return []ActionType{ActionStartDay}
	case StateWorking:
		return []ActionType{ActionStop, ActionEndDay}
	case StateOnBreak:
		return []ActionType{ActionContinue, ActionEndDay}
	default:
		return nil
	}
}
