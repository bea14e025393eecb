package service

import (
	"context"

	"github.com/alexanderramin/shiftclock/internal/repository"
	"github.com/alexanderramin/shiftclock/internal/rollup"
)

// Sentinel display names for stale or absent roster references. Sessions and
// schedules reference workers/projects by bare id with no integrity
// guarantee, so resolution must degrade instead of failing.
const (
	UnknownWorkerName  = "Unknown Worker"
	UnknownProjectName = "Unknown Project"
	UnassignedName     = "Unassigned"
)

type queryService struct {
	sessions  repository.SessionRepo
	schedules repository.ScheduleRepo
	workers   repository.WorkerRepo
	projects  repository.ProjectRepo
	clock     Clock
}

// NewQueryService creates the read-only display façade over sessions,
// schedules and the roster collaborators.
func NewQueryService(
	sessions repository.SessionRepo,
	schedules repository.ScheduleRepo,
	workers repository.WorkerRepo,
	projects repository.ProjectRepo,
	clock Clock,
) QueryService {
	return &queryService{
		sessions:  sessions,
		schedules: schedules,
		workers:   workers,
		projects:  projects,
		clock:     clock,
	}
}

func (s *queryService) ResolveWorkerName(ctx context.Context, workerID string) string {
	if workerID == "" {
		return UnknownWorkerName
	}
	w, err := s.workers.GetByID(ctx, workerID)
	if err != nil {
		return UnknownWorkerName
	}
	return w.DisplayName()
}

func (s *queryService) ResolveProjectName(ctx context.Context, projectID string) string {
	if projectID == "" {
		return UnassignedName
	}
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return UnknownProjectName
	}
	return p.Name
}

func (s *queryService) SessionViews(ctx context.Context, f repository.SessionFilter) ([]SessionView, error) {
	sessions, err := s.sessions.List(ctx, f)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	views := make([]SessionView, 0, len(sessions))
	for _, sess := range sessions {
		views = append(views, SessionView{
			Session:     sess,
			WorkerName:  s.ResolveWorkerName(ctx, sess.WorkerID),
			ProjectName: s.ResolveProjectName(ctx, sess.ProjectID),
			ElapsedMin:  rollup.ElapsedMinutes(sess, now),
		})
	}
	return views, nil
}

func (s *queryService) ScheduleViews(ctx context.Context, f repository.ScheduleFilter) ([]ScheduleView, error) {
	entries, err := s.schedules.List(ctx, f)
	if err != nil {
		return nil, err
	}

	views := make([]ScheduleView, 0, len(entries))
	for _, e := range entries {
		views = append(views, ScheduleView{
			Entry:      e,
			WorkerName: s.ResolveWorkerName(ctx, e.WorkerID),
		})
	}
	return views, nil
}
