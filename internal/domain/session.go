package domain

import (
	"fmt"
	"math"
	"time"
)

// TimeSession is one continuous (possibly paused) work-tracking interval for
// a worker. A session is "open" while its state is active or paused; a worker
// holds at most one open session at a time.
type TimeSession struct {
	ID        string
	WorkerID  string
	ProjectID string // empty = no project
	TaskID    string // empty = no task
	StartedAt time.Time
	EndedAt   *time.Time
	// DurationMin is frozen at clock-out from wall-clock StartedAt→EndedAt.
	// Time spent paused is counted; see Close.
	DurationMin *int
	State       SessionState
	Note        string
	// OwnerDate is the calendar date (UTC, YYYY-MM-DD) the session is
	// attributed to for daily rollups. Always the date of StartedAt, even
	// when the session spans midnight.
	OwnerDate string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SessionDate returns the calendar date string a session starting at t is
// attributed to.
func SessionDate(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// Pause moves an active session to paused. Timestamps are untouched; pausing
// only affects the live display, not the final duration accounting.
func (s *TimeSession) Pause(now time.Time) error {
	if s.State != SessionActive {
		return fmt.Errorf("pause from %s: %w", s.State, ErrInvalidTransition)
	}
	s.State = SessionPaused
	s.UpdatedAt = now
	return nil
}

// Resume moves a paused session back to active.
func (s *TimeSession) Resume(now time.Time) error {
	if s.State != SessionPaused {
		return fmt.Errorf("resume from %s: %w", s.State, ErrInvalidTransition)
	}
	s.State = SessionActive
	s.UpdatedAt = now
	return nil
}

// Close completes an open session at the given instant, freezing EndedAt and
// DurationMin. Completed is terminal: closing again fails and leaves the
// stored duration untouched.
func (s *TimeSession) Close(at time.Time) error {
	if !s.State.Open() {
		return fmt.Errorf("clock out from %s: %w", s.State, ErrInvalidTransition)
	}
	at = at.UTC()
	d := closedDurationMin(s.StartedAt, at)
	s.EndedAt = &at
	s.DurationMin = &d
	s.State = SessionCompleted
	s.UpdatedAt = at
	return nil
}

// closedDurationMin holds the authoritative duration arithmetic in one place
// so the paused-time-counts policy can be changed without touching the state
// machine: wall-clock start→end rounded to whole minutes, floored at zero.
func closedDurationMin(start, end time.Time) int {
	min := int(math.Round(end.Sub(start).Minutes()))
	if min < 0 {
		return 0
	}
	return min
}
