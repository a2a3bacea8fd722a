package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/worklog/internal/db"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/alexanderramin/worklog/internal/repository"
)

// RevokableActions returns at most the single most recent surviving
// action for today. Undo is strictly LIFO: revoking out of order would
// require reconciling breaks recorded after the target, which this
// design rejects instead of attempting a merge. ResetDay destroys the
// log outright and therefore never appears here.
func (m *worklogManager) RevokableActions(ctx context.Context) ([]*domain.Action, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, err := m.sessions.GetByDate(ctx, m.today())
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	last, err := m.actions.Last(ctx, sess.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []*domain.Action{last}, nil
}

// Revoke removes the given action from the log and reconstructs state
// by replaying the survivors. The whole repair runs in one transaction:
// any failure leaves the store exactly as it was.
//
// Per-type repair of the break/session graph:
//   - stop: discard the break it opened (still the open one, since stop
//     is the tail).
//   - continue: reopen the break it closed.
//   - end_day: clear the session's end time; if the survivors replay to
//     ON_BREAK the end had auto-closed an open break, so reopen it.
//   - start_day: clear the session's start time; the empty session row
//     stays and the day is back to NOT_STARTED.
func (m *worklogManager) Revoke(ctx context.Context, actionID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	started := m.now()
	err := m.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return m.revokeTx(ctx, tx, actionID)
	})
	m.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "revoke",
		Duration:  m.now().Sub(started),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"action_id": actionID},
		StartedAt: started,
	})
	return err
}

func (m *worklogManager) revokeTx(ctx context.Context, tx db.DBTX, actionID int64) error {
	sessions := repository.NewSQLiteSessionRepo(tx)
	actions := repository.NewSQLiteActionRepo(tx)
	breaks := repository.NewSQLiteBreakRepo(tx)

	sess, err := sessions.GetByDate(ctx, m.today())
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("no active day: %w", ErrNotRevokable)
	}
	if err != nil {
		return err
	}

	last, err := actions.Last(ctx, sess.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("empty action log: %w", ErrNotRevokable)
	}
	if err != nil {
		return err
	}
	if last.ID != actionID {
		return fmt.Errorf("action %d is not the most recent: %w", actionID, ErrNotRevokable)
	}

	if err := actions.Delete(ctx, last.ID); err != nil {
		return err
	}

	switch last.Type {
	case domain.ActionStartDay:
		sess.StartTime = nil

	case domain.ActionStop:
		open, err := breaks.OpenBySession(ctx, sess.ID)
		if err != nil {
			return err
		}
		if err := breaks.Delete(ctx, open.ID); err != nil {
			return err
		}

	case domain.ActionContinue:
		closed, err := breaks.LastClosedBySession(ctx, sess.ID)
		if err != nil {
			return err
		}
		if err := breaks.Reopen(ctx, closed.ID); err != nil {
			return err
		}

	case domain.ActionEndDay:
		sess.EndTime = nil

	default:
		return fmt.Errorf("action type %s: %w", last.Type, ErrNotRevokable)
	}

	survivors, err := actions.ListBySession(ctx, sess.ID)
	if err != nil {
		return err
	}
	state := domain.ReplayState(survivors)

	// An end_day issued while on break closed that break implicitly;
	// returning to ON_BREAK reopens it.
	if last.Type == domain.ActionEndDay && state == domain.StateOnBreak {
		closed, err := breaks.LastClosedBySession(ctx, sess.ID)
		if err != nil {
			return err
		}
		if err := breaks.Reopen(ctx, closed.ID); err != nil {
			return err
		}
	}

	sess.Status = state
	sess.UpdatedAt = m.now()
	return sessions.Update(ctx, sess)
}
