package service

import "errors"

// ErrInvalidTransition is returned when a command is not legal in the
// current session state. The operation is a no-op: neither the store
// nor the derived state changes.
var ErrInvalidTransition = errors.New("invalid transition")

// ErrNotRevokable is returned when the requested action is missing,
// does not belong to the active day, or is not the most recent
// surviving action. Undo is strictly LIFO.
var ErrNotRevokable = errors.New("action not revokable")
