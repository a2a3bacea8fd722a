package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/worklog/internal/db"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/alexanderramin/worklog/internal/repository"
	"github.com/alexanderramin/worklog/internal/timecalc"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// worklogManager is the session state machine. It holds no session
// state of its own: every validation replays the surviving action log,
// every mutation appends to the store before anything else observes it
// (write-ahead), and the denormalized session status column is rewritten
// from a replay inside the same transaction. A crash between commit and
// any in-memory use is therefore recoverable by construction.
type worklogManager struct {
	mu       sync.Mutex
	sessions repository.SessionRepo
	actions  repository.ActionRepo
	breaks   repository.BreakRepo
	uow      db.UnitOfWork
	calc     *timecalc.Calculator
	observer UseCaseObserver
	now      func() time.Time
}

// ManagerOption configures a worklog manager.
type ManagerOption func(*worklogManager)

// WithClock injects the time source. Tests use a fake clock; the
// default is time.Now.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *worklogManager) { m.now = now }
}

// WithObserver attaches a use-case observer.
func WithObserver(obs UseCaseObserver) ManagerOption {
	return func(m *worklogManager) {
		if obs != nil {
			m.observer = obs
		}
	}
}

// NewWorklogManager wires the state machine over its repositories. The
// repositories must be backed by the same database the UnitOfWork
// transacts on.
func NewWorklogManager(
	sessions repository.SessionRepo,
	actions repository.ActionRepo,
	breaks repository.BreakRepo,
	uow db.UnitOfWork,
	calc *timecalc.Calculator,
	opts ...ManagerOption,
) WorklogService {
	m := &worklogManager{
		sessions: sessions,
		actions:  actions,
		breaks:   breaks,
		uow:      uow,
		calc:     calc,
		observer: NoopUseCaseObserver{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// StartDay opens today's work day. A session row for the current date
// is created lazily and reused; starting is only legal from
// NOT_STARTED, so an already-ended day must be reset first.
func (m *worklogManager) StartDay(ctx context.Context) (*CommandResult, error) {
	return m.mutate(ctx, "start_day", nil, func(ctx context.Context, tx db.DBTX) error {
		sessions := repository.NewSQLiteSessionRepo(tx)
		actions := repository.NewSQLiteActionRepo(tx)

		sess, err := m.getOrCreateToday(ctx, sessions)
		if err != nil {
			return err
		}
		state, err := m.replayedState(ctx, actions, sess)
		if err != nil {
			return err
		}
		if state != domain.StateNotStarted {
			return fmt.Errorf("start day in state %s: %w", state, ErrInvalidTransition)
		}

		now := m.now()
		if _, err := actions.Append(ctx, &domain.Action{
			SessionID: sess.ID,
			Type:      domain.ActionStartDay,
			Timestamp: now,
			CreatedAt: now,
		}); err != nil {
			return err
		}

		sess.StartTime = &now
		sess.Status = domain.StateWorking
		sess.UpdatedAt = now
		return sessions.Update(ctx, sess)
	})
}

// StopWork suspends work and opens a break of the given type.
func (m *worklogManager) StopWork(ctx context.Context, breakType domain.BreakType) (*CommandResult, error) {
	fields := map[string]any{"break_type": string(breakType)}
	return m.mutate(ctx, "stop_work", fields, func(ctx context.Context, tx db.DBTX) error {
		sessions := repository.NewSQLiteSessionRepo(tx)
		actions := repository.NewSQLiteActionRepo(tx)
		breaks := repository.NewSQLiteBreakRepo(tx)

		sess, state, err := m.requireToday(ctx, sessions, actions)
		if err != nil {
			return err
		}
		if state != domain.StateWorking {
			return fmt.Errorf("stop work in state %s: %w", state, ErrInvalidTransition)
		}

		now := m.now()
		if _, err := actions.Append(ctx, &domain.Action{
			SessionID: sess.ID,
			Type:      domain.ActionStop,
			BreakType: &breakType,
			Timestamp: now,
			CreatedAt: now,
		}); err != nil {
			return err
		}
		if _, err := breaks.Create(ctx, &domain.BreakPeriod{
			SessionID: sess.ID,
			BreakType: breakType,
			StartTime: now,
			CreatedAt: now,
		}); err != nil {
			return err
		}

		sess.Status = domain.StateOnBreak
		sess.UpdatedAt = now
		return sessions.Update(ctx, sess)
	})
}

// ContinueWork closes the open break and resumes work.
func (m *worklogManager) ContinueWork(ctx context.Context) (*CommandResult, error) {
	return m.mutate(ctx, "continue_work", nil, func(ctx context.Context, tx db.DBTX) error {
		sessions := repository.NewSQLiteSessionRepo(tx)
		actions := repository.NewSQLiteActionRepo(tx)
		breaks := repository.NewSQLiteBreakRepo(tx)

		sess, state, err := m.requireToday(ctx, sessions, actions)
		if err != nil {
			return err
		}
		if state != domain.StateOnBreak {
			return fmt.Errorf("continue work in state %s: %w", state, ErrInvalidTransition)
		}

		now := m.now()
		if err := m.closeOpenBreak(ctx, breaks, sess.ID, now); err != nil {
			return err
		}
		if _, err := actions.Append(ctx, &domain.Action{
			SessionID: sess.ID,
			Type:      domain.ActionContinue,
			Timestamp: now,
			CreatedAt: now,
		}); err != nil {
			return err
		}

		sess.Status = domain.StateWorking
		sess.UpdatedAt = now
		return sessions.Update(ctx, sess)
	})
}

// EndDay closes the day. An open break is closed implicitly first.
func (m *worklogManager) EndDay(ctx context.Context) (*CommandResult, error) {
	return m.mutate(ctx, "end_day", nil, func(ctx context.Context, tx db.DBTX) error {
		sessions := repository.NewSQLiteSessionRepo(tx)
		actions := repository.NewSQLiteActionRepo(tx)
		breaks := repository.NewSQLiteBreakRepo(tx)

		sess, state, err := m.requireToday(ctx, sessions, actions)
		if err != nil {
			return err
		}
		if state != domain.StateWorking && state != domain.StateOnBreak {
			return fmt.Errorf("end day in state %s: %w", state, ErrInvalidTransition)
		}

		now := m.now()
		if state == domain.StateOnBreak {
			if err := m.closeOpenBreak(ctx, breaks, sess.ID, now); err != nil {
				return err
			}
		}
		if _, err := actions.Append(ctx, &domain.Action{
			SessionID: sess.ID,
			Type:      domain.ActionEndDay,
			Timestamp: now,
			CreatedAt: now,
		}); err != nil {
			return err
		}

		sess.EndTime = &now
		sess.Status = domain.StateDayEnded
		sess.UpdatedAt = now
		return sessions.Update(ctx, sess)
	})
}

// ResetDay destroys today's session with its actions and breaks and
// returns to NOT_STARTED. Legal from any state and never revokable; a
// later StartDay on the same date begins a fresh session.
func (m *worklogManager) ResetDay(ctx context.Context) (*CommandResult, error) {
	return m.mutate(ctx, "reset_day", nil, func(ctx context.Context, tx db.DBTX) error {
		sessions := repository.NewSQLiteSessionRepo(tx)

		sess, err := sessions.GetByDate(ctx, m.today())
		if errors.Is(err, repository.ErrNotFound) {
			return nil // nothing to reset
		}
		if err != nil {
			return err
		}
		return sessions.Delete(ctx, sess.ID)
	})
}

// CanPerform is a pure predicate over the current state, used to gate
// UI affordances. It never mutates; a failed read reports false.
func (m *worklogManager) CanPerform(ctx context.Context, actionType domain.ActionType) bool {
	if actionType == domain.ActionResetDay {
		return true
	}
	state, err := m.CurrentState(ctx)
	if err != nil {
		return false
	}
	for _, allowed := range domain.AllowedActions(state) {
		if allowed == actionType {
			return true
		}
	}
	return false
}

func (m *worklogManager) CurrentState(ctx context.Context) (domain.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentState(ctx)
}

// CurrentSession returns today's session, or nil when none exists yet.
func (m *worklogManager) CurrentSession(ctx context.Context) (*domain.WorkSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, err := m.sessions.GetByDate(ctx, m.today())
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return sess, err
}

// CurrentCalculations derives live metrics from the action log and
// break periods, measuring any open work interval against the clock.
// Nothing is cached beyond this call.
func (m *worklogManager) CurrentCalculations(ctx context.Context) (domain.TimeCalculation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentCalculations(ctx)
}

func (m *worklogManager) ActionHistory(ctx context.Context) ([]*domain.Action, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, err := m.sessions.GetByDate(ctx, m.today())
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m.actions.ListBySession(ctx, sess.ID)
}

func (m *worklogManager) ListBreaks(ctx context.Context) ([]*domain.BreakPeriod, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, err := m.sessions.GetByDate(ctx, m.today())
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m.breaks.ListBySession(ctx, sess.ID)
}

// --- internals ---

func (m *worklogManager) today() string {
	return m.now().Format(dateLayout)
}

// mutate serializes a command behind the manager lock, runs it inside a
// transaction, and on success returns the freshly derived state and
// calculations. On failure both the store and the derived view keep
// their pre-call values.
func (m *worklogManager) mutate(ctx context.Context, name string, fields map[string]any, fn func(ctx context.Context, tx db.DBTX) error) (*CommandResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	started := m.now()
	err := m.uow.WithinTx(ctx, fn)
	m.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  m.now().Sub(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
	if err != nil {
		return nil, err
	}

	state, err := m.currentState(ctx)
	if err != nil {
		return nil, err
	}
	calc, err := m.currentCalculations(ctx)
	if err != nil {
		return nil, err
	}
	return &CommandResult{State: state, Calculations: calc}, nil
}

func (m *worklogManager) currentState(ctx context.Context) (domain.State, error) {
	sess, err := m.sessions.GetByDate(ctx, m.today())
	if errors.Is(err, repository.ErrNotFound) {
		return domain.StateNotStarted, nil
	}
	if err != nil {
		return "", err
	}
	log, err := m.actions.ListBySession(ctx, sess.ID)
	if err != nil {
		return "", err
	}
	return domain.ReplayState(log), nil
}

func (m *worklogManager) currentCalculations(ctx context.Context) (domain.TimeCalculation, error) {
	sess, err := m.sessions.GetByDate(ctx, m.today())
	if errors.Is(err, repository.ErrNotFound) {
		return domain.DeriveCalculation(0, 0, m.calc.NormMinutes), nil
	}
	if err != nil {
		return domain.TimeCalculation{}, err
	}
	log, err := m.actions.ListBySession(ctx, sess.ID)
	if err != nil {
		return domain.TimeCalculation{}, err
	}
	breaks, err := m.breaks.ListBySession(ctx, sess.ID)
	if err != nil {
		return domain.TimeCalculation{}, err
	}
	return m.calc.CalculateCurrent(log, breaks, m.now()), nil
}

// getOrCreateToday loads today's session row, creating a not-started
// one when the date has no row yet.
func (m *worklogManager) getOrCreateToday(ctx context.Context, sessions repository.SessionRepo) (*domain.WorkSession, error) {
	sess, err := sessions.GetByDate(ctx, m.today())
	if err == nil {
		return sess, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	now := m.now()
	sess = &domain.WorkSession{
		ID:        uuid.New().String(),
		Date:      m.today(),
		Status:    domain.StateNotStarted,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := sessions.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// requireToday loads today's session and its replayed state. Commands
// other than StartDay need an existing session; without one the day has
// not started and every such command is an invalid transition.
func (m *worklogManager) requireToday(ctx context.Context, sessions repository.SessionRepo, actions repository.ActionRepo) (*domain.WorkSession, domain.State, error) {
	sess, err := sessions.GetByDate(ctx, m.today())
	if errors.Is(err, repository.ErrNotFound) {
		return nil, "", fmt.Errorf("day not started: %w", ErrInvalidTransition)
	}
	if err != nil {
		return nil, "", err
	}
	state, err := m.replayedState(ctx, actions, sess)
	if err != nil {
		return nil, "", err
	}
	return sess, state, nil
}

func (m *worklogManager) replayedState(ctx context.Context, actions repository.ActionRepo, sess *domain.WorkSession) (domain.State, error) {
	log, err := actions.ListBySession(ctx, sess.ID)
	if err != nil {
		return "", err
	}
	return domain.ReplayState(log), nil
}

// closeOpenBreak ends the session's single open break at the given
// instant, recording its duration in whole minutes.
func (m *worklogManager) closeOpenBreak(ctx context.Context, breaks repository.BreakRepo, sessionID string, end time.Time) error {
	open, err := breaks.OpenBySession(ctx, sessionID)
	if err != nil {
		return err
	}
	seconds := int(end.Sub(open.StartTime).Seconds())
	if seconds < 0 {
		seconds = 0
	}
	return breaks.Close(ctx, open.ID, end.Format(time.RFC3339), seconds/60)
}
