package service

import (
	"context"

	"github.com/alexanderramin/shiftclock/internal/domain"
	"github.com/alexanderramin/shiftclock/internal/repository"
)

// ClockInRequest carries the fields of a clock-in command. ProjectID, TaskID
// and Note are optional.
type ClockInRequest struct {
	WorkerID  string
	ProjectID string
	TaskID    string
	Note      string
}

// SessionService is the session registry: the single owner of TimeSession
// state transitions and of the one-open-session-per-worker invariant.
type SessionService interface {
	ClockIn(ctx context.Context, req ClockInRequest) (*domain.TimeSession, error)
	Pause(ctx context.Context, sessionID string) (*domain.TimeSession, error)
	Resume(ctx context.Context, sessionID string) (*domain.TimeSession, error)
	ClockOut(ctx context.Context, sessionID string) (*domain.TimeSession, error)
	// ActiveSessionFor returns the worker's open session, or nil when the
	// worker is clocked out.
	ActiveSessionFor(ctx context.Context, workerID string) (*domain.TimeSession, error)
	List(ctx context.Context, f repository.SessionFilter) ([]*domain.TimeSession, error)
}

// SummaryService produces derived rollup views. It only reads.
type SummaryService interface {
	Daily(ctx context.Context, date string) (domain.DailySummary, error)
	Weekly(ctx context.Context, refDate string) (domain.WeeklySummary, error)
	// CompletionRate returns the percentage of matching sessions that
	// reached the completed state.
	CompletionRate(ctx context.Context, f repository.SessionFilter) (int, error)
}

// ScheduleRequest carries the fields of a new planned shift. BreakMin
// defaults to domain.DefaultBreakMin when zero; end-before-start is not
// validated at this layer.
type ScheduleRequest struct {
	WorkerID  string
	ShiftDate string
	StartTime string
	EndTime   string
	BreakMin  int
	Note      string
}

type ScheduleService interface {
	Create(ctx context.Context, req ScheduleRequest) (*domain.ScheduleEntry, error)
	MarkCompleted(ctx context.Context, id string) (*domain.ScheduleEntry, error)
	MarkMissed(ctx context.Context, id string) (*domain.ScheduleEntry, error)
	List(ctx context.Context, f repository.ScheduleFilter) ([]*domain.ScheduleEntry, error)
}

// SessionView is a session joined with display names and its live elapsed
// minutes, ready for rendering.
type SessionView struct {
	Session     *domain.TimeSession
	WorkerName  string
	ProjectName string
	ElapsedMin  int
}

// ScheduleView is a schedule entry joined with the worker's display name.
type ScheduleView struct {
	Entry      *domain.ScheduleEntry
	WorkerName string
}

// QueryService is the read-only display façade. Name resolution never fails:
// stale roster references resolve to sentinel names.
type QueryService interface {
	ResolveWorkerName(ctx context.Context, workerID string) string
	ResolveProjectName(ctx context.Context, projectID string) string
	SessionViews(ctx context.Context, f repository.SessionFilter) ([]SessionView, error)
	ScheduleViews(ctx context.Context, f repository.ScheduleFilter) ([]ScheduleView, error)
}

// WorkerRequest carries the fields of a new roster worker.
type WorkerRequest struct {
	FirstName  string
	LastName   string
	Position   string
	Department string
}

// RosterService seeds and reads the collaborator tables. It exists for the
// CLI; rosters are otherwise managed outside this module.
type RosterService interface {
	AddWorker(ctx context.Context, req WorkerRequest) (*domain.Worker, error)
	Workers(ctx context.Context) ([]*domain.Worker, error)
	AddProject(ctx context.Context, name string) (*domain.Project, error)
	Projects(ctx context.Context) ([]*domain.Project, error)
}
