package repository

import (
	"context"

	"github.com/alexanderramin/worklog/internal/domain"
)

type SessionRepo interface {
	Create(ctx context.Context, s *domain.WorkSession) error
	GetByID(ctx context.Context, id string) (*domain.WorkSession, error)
	GetByDate(ctx context.Context, date string) (*domain.WorkSession, error)
	Update(ctx context.Context, s *domain.WorkSession) error
	// Delete removes the session; actions and breaks cascade with it.
	Delete(ctx context.Context, id string) error
}

type ActionRepo interface {
	// Append persists the action and returns its store-assigned id.
	// Either the row is durably recorded with its id or the call fails
	// and no id is consumed.
	Append(ctx context.Context, a *domain.Action) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Action, error)
	// ListBySession returns surviving actions in id order; revoked
	// actions are deleted outright and never appear here.
	ListBySession(ctx context.Context, sessionID string) ([]*domain.Action, error)
	// Last returns the LIFO head of the session's log, or ErrNotFound.
	Last(ctx context.Context, sessionID string) (*domain.Action, error)
	Delete(ctx context.Context, id int64) error
}

type BreakRepo interface {
	Create(ctx context.Context, b *domain.BreakPeriod) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.BreakPeriod, error)
	ListBySession(ctx context.Context, sessionID string) ([]*domain.BreakPeriod, error)
	// OpenBySession returns the single currently-open break, or
	// ErrNotFound when every break is closed.
	OpenBySession(ctx context.Context, sessionID string) (*domain.BreakPeriod, error)
	// LastClosedBySession returns the most recently closed break.
	LastClosedBySession(ctx context.Context, sessionID string) (*domain.BreakPeriod, error)
	Close(ctx context.Context, id int64, end string, durationMinutes int) error
	// Reopen clears end_time and duration_minutes, restoring the break
	// to its in-progress form.
	Reopen(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}
