package repository

import (
	"context"

	"github.com/alexanderramin/shiftclock/internal/domain"
)

// SessionFilter narrows a session listing. Zero values mean "no constraint".
type SessionFilter struct {
	WorkerID  string
	ProjectID string
	OwnerDate string // exact calendar date, YYYY-MM-DD
	DateFrom  string // inclusive window start
	DateTo    string // inclusive window end
	State     domain.SessionState
}

// ScheduleFilter narrows a schedule listing. Zero values mean "no constraint".
type ScheduleFilter struct {
	WorkerID  string
	ShiftDate string
	State     domain.ScheduleState
}

type SessionRepo interface {
	// Create inserts a new session. Inserting a second open session for a
	// worker fails atomically with domain.ErrSessionConflict.
	Create(ctx context.Context, s *domain.TimeSession) error
	GetByID(ctx context.Context, id string) (*domain.TimeSession, error)
	// GetOpenByWorker returns the worker's open (active or paused) session,
	// or nil when the worker is clocked out.
	GetOpenByWorker(ctx context.Context, workerID string) (*domain.TimeSession, error)
	Update(ctx context.Context, s *domain.TimeSession) error
	List(ctx context.Context, f SessionFilter) ([]*domain.TimeSession, error)
}

type ScheduleRepo interface {
	Create(ctx context.Context, e *domain.ScheduleEntry) error
	GetByID(ctx context.Context, id string) (*domain.ScheduleEntry, error)
	Update(ctx context.Context, e *domain.ScheduleEntry) error
	List(ctx context.Context, f ScheduleFilter) ([]*domain.ScheduleEntry, error)
}

// WorkerRepo and ProjectRepo are thin roster collaborators: the engine reads
// them for name resolution and seeds them from the CLI. Full profile
// management lives outside this module.
type WorkerRepo interface {
	Create(ctx context.Context, w *domain.Worker) error
	GetByID(ctx context.Context, id string) (*domain.Worker, error)
	List(ctx context.Context) ([]*domain.Worker, error)
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
}
