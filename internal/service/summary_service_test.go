package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/shiftclock/internal/repository"
	"github.com/alexanderramin/shiftclock/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSummaryFixture wires a registry and a summary service over one database
// so summaries observe the registry's writes.
func newSummaryFixture(t *testing.T) (SessionService, SummaryService, *testutil.FrozenClock, *sql.DB) {
	t.Helper()
	database := testutil.NewTestDB(t)
	clock := testutil.NewFrozenClock(t0)
	sessions := repository.NewSQLiteSessionRepo(database)
	registry := NewSessionService(sessions, testutil.NewTestUoW(database), clock)
	summaries := NewSummaryService(sessions, clock)
	return registry, summaries, clock, database
}

func TestDaily_LiveActiveSession(t *testing.T) {
	registry, summaries, clock, _ := newSummaryFixture(t)
	ctx := context.Background()

	_, err := registry.ClockIn(ctx, ClockInRequest{WorkerID: "w1"})
	require.NoError(t, err)

	clock.Advance(120 * time.Minute)
	got, err := summaries.Daily(ctx, "2025-03-10")
	require.NoError(t, err)

	assert.Equal(t, 120, got.TotalMinutes)
	assert.Equal(t, 1, got.DistinctActiveWorkers)
	assert.Equal(t, 0, got.CompletedSessionCount)
}

func TestDaily_IsRecomputedOnEveryCall(t *testing.T) {
	registry, summaries, clock, _ := newSummaryFixture(t)
	ctx := context.Background()

	_, err := registry.ClockIn(ctx, ClockInRequest{WorkerID: "w1"})
	require.NoError(t, err)

	clock.Advance(30 * time.Minute)
	first, err := summaries.Daily(ctx, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, 30, first.TotalMinutes)

	clock.Advance(15 * time.Minute)
	second, err := summaries.Daily(ctx, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, 45, second.TotalMinutes)
}

func TestWeekly_ExcludesOpenSessions(t *testing.T) {
	registry, summaries, clock, _ := newSummaryFixture(t)
	ctx := context.Background()

	// A completed 600-minute session.
	sess, err := registry.ClockIn(ctx, ClockInRequest{WorkerID: "w1"})
	require.NoError(t, err)
	clock.Advance(600 * time.Minute)
	_, err = registry.ClockOut(ctx, sess.ID)
	require.NoError(t, err)

	// A still-active session, 300 minutes elapsed by the reference time.
	_, err = registry.ClockIn(ctx, ClockInRequest{WorkerID: "w2"})
	require.NoError(t, err)
	clock.Advance(300 * time.Minute)

	got, err := summaries.Weekly(ctx, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, 600, got.TotalMinutes)
	assert.Equal(t, 1, got.CompletedSessionCount)
	assert.Equal(t, 600/7, got.AverageMinutesPerDay)
	assert.Equal(t, "2025-03-04", got.WindowStart)
	assert.Equal(t, "2025-03-10", got.WindowEnd)
}

func TestWeekly_IgnoresSessionsOutsideWindow(t *testing.T) {
	_, summaries, _, database := newSummaryFixture(t)
	ctx := context.Background()
	repo := repository.NewSQLiteSessionRepo(database)

	// Eight days before the reference date: outside the 7-day window.
	old := testutil.NewTestSession("w1", t0.AddDate(0, 0, -8), testutil.Completed(90))
	require.NoError(t, repo.Create(ctx, old))
	inside := testutil.NewTestSession("w2", t0.AddDate(0, 0, -6), testutil.Completed(45))
	require.NoError(t, repo.Create(ctx, inside))

	got, err := summaries.Weekly(ctx, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, 45, got.TotalMinutes)
	assert.Equal(t, 1, got.CompletedSessionCount)
}

func TestCompletionRate_OverFilteredSessions(t *testing.T) {
	registry, summaries, clock, _ := newSummaryFixture(t)
	ctx := context.Background()

	sess, err := registry.ClockIn(ctx, ClockInRequest{WorkerID: "w1"})
	require.NoError(t, err)
	clock.Advance(time.Hour)
	_, err = registry.ClockOut(ctx, sess.ID)
	require.NoError(t, err)

	_, err = registry.ClockIn(ctx, ClockInRequest{WorkerID: "w2"})
	require.NoError(t, err)

	rate, err := summaries.CompletionRate(ctx, repository.SessionFilter{})
	require.NoError(t, err)
	assert.Equal(t, 50, rate)
}

func TestToday_UsesClockDate(t *testing.T) {
	clock := testutil.NewFrozenClock(t0)
	assert.Equal(t, "2025-03-10", Today(clock))
}
