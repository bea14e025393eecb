package testutil

import (
	"time"

	"github.com/alexanderramin/shiftclock/internal/domain"
	"github.com/google/uuid"
)

// Worker options

type WorkerOption func(*domain.Worker)

func WithPosition(p string) WorkerOption {
	return func(w *domain.Worker) {
		w.Position = p
	}
}

func WithWorkerStatus(s domain.WorkerStatus) WorkerOption {
	return func(w *domain.Worker) {
		w.Status = s
	}
}

func NewTestWorker(first, last string, opts ...WorkerOption) *domain.Worker {
	now := time.Now().UTC()
	w := &domain.Worker{
		ID:        uuid.New().String(),
		FirstName: first,
		LastName:  last,
		Status:    domain.WorkerActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func NewTestProject(name string) *domain.Project {
	now := time.Now().UTC()
	return &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		Status:    domain.ProjectActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Session options

type SessionOption func(*domain.TimeSession)

func WithProjectID(id string) SessionOption {
	return func(s *domain.TimeSession) {
		s.ProjectID = id
	}
}

func WithNote(note string) SessionOption {
	return func(s *domain.TimeSession) {
		s.Note = note
	}
}

func WithState(state domain.SessionState) SessionOption {
	return func(s *domain.TimeSession) {
		s.State = state
	}
}

// Completed closes the fixture session at start+minutes, leaving it in the
// completed state with a frozen duration.
func Completed(minutes int) SessionOption {
	return func(s *domain.TimeSession) {
		end := s.StartedAt.Add(time.Duration(minutes) * time.Minute)
		s.EndedAt = &end
		s.DurationMin = &minutes
		s.State = domain.SessionCompleted
		s.UpdatedAt = end
	}
}

// NewTestSession builds an open session for a worker starting at the given
// instant. Options may complete it or adjust fields.
func NewTestSession(workerID string, start time.Time, opts ...SessionOption) *domain.TimeSession {
	start = start.UTC()
	s := &domain.TimeSession{
		ID:        uuid.New().String(),
		WorkerID:  workerID,
		StartedAt: start,
		State:     domain.SessionActive,
		OwnerDate: domain.SessionDate(start),
		CreatedAt: start,
		UpdatedAt: start,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Schedule options

type ScheduleOption func(*domain.ScheduleEntry)

func WithScheduleState(state domain.ScheduleState) ScheduleOption {
	return func(e *domain.ScheduleEntry) {
		e.State = state
	}
}

func WithBreakMin(m int) ScheduleOption {
	return func(e *domain.ScheduleEntry) {
		e.BreakMin = m
	}
}

func NewTestSchedule(workerID, shiftDate string, opts ...ScheduleOption) *domain.ScheduleEntry {
	now := time.Now().UTC()
	e := &domain.ScheduleEntry{
		ID:        uuid.New().String(),
		WorkerID:  workerID,
		ShiftDate: shiftDate,
		StartTime: "09:00",
		EndTime:   "17:00",
		BreakMin:  domain.DefaultBreakMin,
		State:     domain.ShiftScheduled,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
