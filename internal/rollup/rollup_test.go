package rollup

import (
	"testing"
	"time"

	"github.com/alexanderramin/shiftclock/internal/domain"
	"github.com/alexanderramin/shiftclock/internal/testutil"
	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func TestElapsedMinutes_OpenSessionIsLive(t *testing.T) {
	s := testutil.NewTestSession("w1", t0)

	assert.Equal(t, 120, ElapsedMinutes(s, t0.Add(120*time.Minute)))
	// Recomputed on every call, never cached.
	assert.Equal(t, 121, ElapsedMinutes(s, t0.Add(121*time.Minute)))
}

func TestElapsedMinutes_FloorsPartialMinutes(t *testing.T) {
	s := testutil.NewTestSession("w1", t0)
	assert.Equal(t, 10, ElapsedMinutes(s, t0.Add(10*time.Minute+59*time.Second)))
}

func TestElapsedMinutes_PausedSessionKeepsAccruing(t *testing.T) {
	s := testutil.NewTestSession("w1", t0, testutil.WithState(domain.SessionPaused))
	assert.Equal(t, 30, ElapsedMinutes(s, t0.Add(30*time.Minute)))
}

func TestElapsedMinutes_CompletedUsesFrozenDuration(t *testing.T) {
	s := testutil.NewTestSession("w1", t0, testutil.Completed(95))
	// Reference time is irrelevant once the duration is frozen.
	assert.Equal(t, 95, ElapsedMinutes(s, t0.Add(9*time.Hour)))
}

func TestElapsedMinutes_NeverNegative(t *testing.T) {
	s := testutil.NewTestSession("w1", t0)
	assert.Equal(t, 0, ElapsedMinutes(s, t0.Add(-5*time.Minute)))
}

func TestDaily_CountsLiveOpenSessions(t *testing.T) {
	sessions := []*domain.TimeSession{
		testutil.NewTestSession("w1", t0),
	}

	got := Daily(sessions, "2025-03-10", t0.Add(120*time.Minute))
	assert.Equal(t, 120, got.TotalMinutes)
	assert.Equal(t, 1, got.DistinctActiveWorkers)
	assert.Equal(t, 0, got.CompletedSessionCount)
}

func TestDaily_MixesCompletedAndOpen(t *testing.T) {
	sessions := []*domain.TimeSession{
		testutil.NewTestSession("w1", t0, testutil.Completed(60)),
		testutil.NewTestSession("w2", t0.Add(time.Hour)),
		testutil.NewTestSession("w3", t0, testutil.WithState(domain.SessionPaused)),
		// Different date, excluded entirely.
		testutil.NewTestSession("w4", t0.AddDate(0, 0, -1), testutil.Completed(500)),
	}

	now := t0.Add(2 * time.Hour)
	got := Daily(sessions, "2025-03-10", now)
	// 60 completed + 60 live (w2) + 120 live paused (w3).
	assert.Equal(t, 240, got.TotalMinutes)
	assert.Equal(t, 2, got.DistinctActiveWorkers)
	assert.Equal(t, 1, got.CompletedSessionCount)
}

func TestDaily_EmptyDate(t *testing.T) {
	got := Daily(nil, "2025-03-10", t0)
	assert.Equal(t, domain.DailySummary{Date: "2025-03-10"}, got)
}

func TestDaily_DistinctWorkersNotDoubleCounted(t *testing.T) {
	// A worker can only hold one open session, but completed + open rows for
	// the same worker on one date still count the worker once.
	sessions := []*domain.TimeSession{
		testutil.NewTestSession("w1", t0, testutil.Completed(30)),
		testutil.NewTestSession("w1", t0.Add(time.Hour)),
	}
	got := Daily(sessions, "2025-03-10", t0.Add(2*time.Hour))
	assert.Equal(t, 1, got.DistinctActiveWorkers)
}

func TestWeekly_ExcludesOpenSessions(t *testing.T) {
	sessions := []*domain.TimeSession{
		testutil.NewTestSession("w1", t0.AddDate(0, 0, -2), testutil.Completed(600)),
		testutil.NewTestSession("w2", t0), // active, 300 minutes elapsed at now
	}

	now := t0.Add(300 * time.Minute)
	got := Weekly(sessions, "2025-03-10", now)
	assert.Equal(t, 600, got.TotalMinutes)
	assert.Equal(t, 1, got.CompletedSessionCount)
	assert.Equal(t, 600/7, got.AverageMinutesPerDay)
}

func TestWeekly_WindowBoundsInclusive(t *testing.T) {
	sessions := []*domain.TimeSession{
		// On the window start day (refDate - 6).
		testutil.NewTestSession("w1", t0.AddDate(0, 0, -6), testutil.Completed(10)),
		// One day before the window.
		testutil.NewTestSession("w2", t0.AddDate(0, 0, -7), testutil.Completed(20)),
		// On the reference day itself.
		testutil.NewTestSession("w3", t0, testutil.Completed(40)),
	}

	got := Weekly(sessions, "2025-03-10", t0.Add(8*time.Hour))
	assert.Equal(t, "2025-03-04", got.WindowStart)
	assert.Equal(t, "2025-03-10", got.WindowEnd)
	assert.Equal(t, 50, got.TotalMinutes)
	assert.Equal(t, 2, got.CompletedSessionCount)
}

func TestWeekly_AverageAlwaysDividesBySeven(t *testing.T) {
	// A single day of data still divides by 7, not days-with-data.
	sessions := []*domain.TimeSession{
		testutil.NewTestSession("w1", t0, testutil.Completed(700)),
	}
	got := Weekly(sessions, "2025-03-10", t0.Add(12*time.Hour))
	assert.Equal(t, 100, got.AverageMinutesPerDay)
}

func TestCompletionRate(t *testing.T) {
	assert.Equal(t, 0, CompletionRate(nil))

	sessions := []*domain.TimeSession{
		testutil.NewTestSession("w1", t0, testutil.Completed(30)),
		testutil.NewTestSession("w2", t0, testutil.Completed(30)),
		testutil.NewTestSession("w3", t0),
		testutil.NewTestSession("w4", t0, testutil.WithState(domain.SessionPaused)),
	}
	assert.Equal(t, 50, CompletionRate(sessions))
}
