// Package rollup computes derived summary views over a snapshot of time
// sessions. Every function is pure: the reference instant is always passed
// in, never read from the wall clock, so callers own the refresh cadence and
// tests stay deterministic.
package rollup

import (
	"time"

	"github.com/alexanderramin/shiftclock/internal/domain"
)

// WeeklyWindowDays is the fixed size of the weekly summary window, and the
// fixed divisor for its per-day average regardless of data sparsity.
const WeeklyWindowDays = 7

// ElapsedMinutes returns the minutes a session has accumulated as of now.
// Completed sessions return their frozen duration; open sessions return live
// wall-clock elapsed time, recomputed on every call. A paused session keeps
// accruing here: pausing is display-state only, the authoritative duration is
// frozen at clock-out from StartedAt→EndedAt.
func ElapsedMinutes(s *domain.TimeSession, now time.Time) int {
	if s.State == domain.SessionCompleted {
		if s.DurationMin == nil {
			return 0
		}
		return *s.DurationMin
	}
	min := int(now.Sub(s.StartedAt).Minutes())
	if min < 0 {
		return 0
	}
	return min
}

// Daily summarizes the sessions attributed to one calendar date. Open
// sessions contribute their live elapsed minutes; the active-worker count is
// the number of distinct workers holding an open session dated that day.
func Daily(sessions []*domain.TimeSession, date string, now time.Time) domain.DailySummary {
	summary := domain.DailySummary{Date: date}
	activeWorkers := make(map[string]struct{})

	for _, s := range sessions {
		if s.OwnerDate != date {
			continue
		}
		summary.TotalMinutes += ElapsedMinutes(s, now)
		if s.State == domain.SessionCompleted {
			summary.CompletedSessionCount++
		} else {
			activeWorkers[s.WorkerID] = struct{}{}
		}
	}

	summary.DistinctActiveWorkers = len(activeWorkers)
	return summary
}

// Weekly summarizes the 7 calendar days ending at refDate inclusive. Only
// completed sessions contribute, unlike Daily; the asymmetry is deliberate
// and matches observed product behavior, so do not "fix" it here.
func Weekly(sessions []*domain.TimeSession, refDate string, now time.Time) domain.WeeklySummary {
	start, end := WeekWindow(refDate, now)
	summary := domain.WeeklySummary{WindowStart: start, WindowEnd: end}

	for _, s := range sessions {
		if s.State != domain.SessionCompleted || s.DurationMin == nil {
			continue
		}
		if s.OwnerDate < start || s.OwnerDate > end {
			continue
		}
		summary.TotalMinutes += *s.DurationMin
		summary.CompletedSessionCount++
	}

	summary.AverageMinutesPerDay = summary.TotalMinutes / WeeklyWindowDays
	return summary
}

// WeekWindow returns the [start, end] calendar dates of the 7-day window
// ending at refDate inclusive. A malformed refDate falls back to now's date;
// in practice dates arrive well-formed from the registry or validated input.
func WeekWindow(refDate string, now time.Time) (start, end string) {
	ref, err := time.Parse(time.DateOnly, refDate)
	if err != nil {
		ref = now.UTC()
	}
	return ref.AddDate(0, 0, -(WeeklyWindowDays - 1)).Format(time.DateOnly), ref.Format(time.DateOnly)
}

// CompletionRate returns the percentage of sessions that reached the
// completed state, rounded down. Empty input yields zero.
func CompletionRate(sessions []*domain.TimeSession) int {
	if len(sessions) == 0 {
		return 0
	}
	completed := 0
	for _, s := range sessions {
		if s.State == domain.SessionCompleted {
			completed++
		}
	}
	return completed * 100 / len(sessions)
}
