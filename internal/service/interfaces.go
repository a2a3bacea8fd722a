package service

import (
	"context"

	"github.com/alexanderramin/worklog/internal/domain"
)

// CommandResult carries the state and calculations produced by a
// successful command, enough for callers to render confirmation.
type CommandResult struct {
	State        domain.State
	Calculations domain.TimeCalculation
}

// WorklogService is the single-writer facade over today's session:
// commands, queries and the revoke API. Commands serialize behind a
// per-manager lock; queries always derive from the durable action log.
type WorklogService interface {
	// Commands.
	StartDay(ctx context.Context) (*CommandResult, error)
	StopWork(ctx context.Context, breakType domain.BreakType) (*CommandResult, error)
	ContinueWork(ctx context.Context) (*CommandResult, error)
	EndDay(ctx context.Context) (*CommandResult, error)
	ResetDay(ctx context.Context) (*CommandResult, error)

	// Queries.
	CanPerform(ctx context.Context, actionType domain.ActionType) bool
	CurrentState(ctx context.Context) (domain.State, error)
	CurrentSession(ctx context.Context) (*domain.WorkSession, error)
	CurrentCalculations(ctx context.Context) (domain.TimeCalculation, error)
	ActionHistory(ctx context.Context) ([]*domain.Action, error)
	ListBreaks(ctx context.Context) ([]*domain.BreakPeriod, error)

	// Revoke.
	RevokableActions(ctx context.Context) ([]*domain.Action, error)
	Revoke(ctx context.Context, actionID int64) error
}
