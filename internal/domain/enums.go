package domain

type SessionState string

const (
	SessionActive    SessionState = "active"
	SessionPaused    SessionState = "paused"
	SessionCompleted SessionState = "completed"
)

// Open reports whether a session in this state still holds the worker's
// single open-session slot.
func (s SessionState) Open() bool {
	return s == SessionActive || s == SessionPaused
}

type ScheduleState string

const (
	ShiftScheduled ScheduleState = "scheduled"
	ShiftCompleted ScheduleState = "completed"
	ShiftMissed    ScheduleState = "missed"
)

type WorkerStatus string

const (
	WorkerActive   WorkerStatus = "active"
	WorkerInactive WorkerStatus = "inactive"
)

type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectArchived ProjectStatus = "archived"
)
