package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/shiftclock/internal/db"
	"github.com/alexanderramin/shiftclock/internal/domain"
	"github.com/alexanderramin/shiftclock/internal/repository"
	"github.com/google/uuid"
)

type sessionService struct {
	sessions repository.SessionRepo
	uow      db.UnitOfWork
	clock    Clock
	observer UseCaseObserver
}

// NewSessionService creates the session registry. All transitions run inside
// the unit of work so each command applies atomically or not at all.
func NewSessionService(sessions repository.SessionRepo, uow db.UnitOfWork, clock Clock, observers ...UseCaseObserver) SessionService {
	return &sessionService{
		sessions: sessions,
		uow:      uow,
		clock:    clock,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *sessionService) ClockIn(ctx context.Context, req ClockInRequest) (*domain.TimeSession, error) {
	started := s.clock.Now()
	if req.WorkerID == "" {
		return nil, fmt.Errorf("clock in: worker id is required")
	}

	now := started.UTC()
	session := &domain.TimeSession{
		ID:        uuid.New().String(),
		WorkerID:  req.WorkerID,
		ProjectID: req.ProjectID,
		TaskID:    req.TaskID,
		StartedAt: now,
		State:     domain.SessionActive,
		Note:      req.Note,
		OwnerDate: domain.SessionDate(now),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)

		// Pre-check for a friendly conflict; the partial unique index below
		// remains the authoritative guard against a concurrent racer.
		open, err := txSessions.GetOpenByWorker(ctx, req.WorkerID)
		if err != nil {
			return err
		}
		if open != nil {
			return fmt.Errorf("worker %s: %w", req.WorkerID, domain.ErrSessionConflict)
		}

		return txSessions.Create(ctx, session)
	})
	s.observe(ctx, "clock_in", started, err, map[string]any{"worker_id": req.WorkerID})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) Pause(ctx context.Context, sessionID string) (*domain.TimeSession, error) {
	return s.transition(ctx, "pause", sessionID, func(sess *domain.TimeSession, now time.Time) error {
		return sess.Pause(now)
	})
}

func (s *sessionService) Resume(ctx context.Context, sessionID string) (*domain.TimeSession, error) {
	return s.transition(ctx, "resume", sessionID, func(sess *domain.TimeSession, now time.Time) error {
		return sess.Resume(now)
	})
}

func (s *sessionService) ClockOut(ctx context.Context, sessionID string) (*domain.TimeSession, error) {
	return s.transition(ctx, "clock_out", sessionID, func(sess *domain.TimeSession, now time.Time) error {
		return sess.Close(now)
	})
}

// transition loads a session, applies a domain state change at the clock's
// current instant, and persists it, all within one transaction.
func (s *sessionService) transition(
	ctx context.Context,
	name string,
	sessionID string,
	apply func(*domain.TimeSession, time.Time) error,
) (*domain.TimeSession, error) {
	started := s.clock.Now()
	var session *domain.TimeSession

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)

		sess, err := txSessions.GetByID(ctx, sessionID)
		if err != nil {
			return err
		}
		if err := apply(sess, started.UTC()); err != nil {
			return err
		}
		if err := txSessions.Update(ctx, sess); err != nil {
			return err
		}
		session = sess
		return nil
	})
	s.observe(ctx, name, started, err, map[string]any{"session_id": sessionID})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) ActiveSessionFor(ctx context.Context, workerID string) (*domain.TimeSession, error) {
	return s.sessions.GetOpenByWorker(ctx, workerID)
}

func (s *sessionService) List(ctx context.Context, f repository.SessionFilter) ([]*domain.TimeSession, error) {
	return s.sessions.List(ctx, f)
}

func (s *sessionService) observe(ctx context.Context, name string, started time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  s.clock.Now().Sub(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
}
