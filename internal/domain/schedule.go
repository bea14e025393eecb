package domain

import "time"

// DefaultBreakMin is the break length assumed for a shift when none is given.
const DefaultBreakMin = 30

// ScheduleEntry is a planned shift, independent of actual clocked time. It
// shares only a WorkerID with TimeSession; the two lifecycles are not linked.
type ScheduleEntry struct {
	ID        string
	WorkerID  string
	ShiftDate string // YYYY-MM-DD, local wall-clock date
	StartTime string // HH:MM, no timezone conversion
	EndTime   string // HH:MM; not validated against StartTime here
	BreakMin  int
	State     ScheduleState
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MarkCompleted overwrites the entry state. There is no transition guard:
// entries may be re-marked and the last write wins.
func (e *ScheduleEntry) MarkCompleted(now time.Time) {
	e.State = ShiftCompleted
	e.UpdatedAt = now
}

// MarkMissed overwrites the entry state, last write wins.
func (e *ScheduleEntry) MarkMissed(now time.Time) {
	e.State = ShiftMissed
	e.UpdatedAt = now
}
