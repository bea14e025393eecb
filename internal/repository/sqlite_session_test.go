package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/shiftclock/internal/domain"
	"github.com/alexanderramin/shiftclock/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func TestSessionRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	sess := testutil.NewTestSession("w1", t0,
		testutil.WithProjectID("p1"),
		testutil.WithNote("morning shift"),
	)
	require.NoError(t, repo.Create(ctx, sess))

	fetched, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, fetched.ID)
	assert.Equal(t, "w1", fetched.WorkerID)
	assert.Equal(t, "p1", fetched.ProjectID)
	assert.Equal(t, "morning shift", fetched.Note)
	assert.Equal(t, domain.SessionActive, fetched.State)
	assert.Equal(t, "2025-03-10", fetched.OwnerDate)
	assert.True(t, fetched.StartedAt.Equal(t0))
	assert.Nil(t, fetched.EndedAt)
	assert.Nil(t, fetched.DurationMin)
}

func TestSessionRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_SecondOpenSessionConflicts(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestSession("w1", t0)))

	err := repo.Create(ctx, testutil.NewTestSession("w1", t0.Add(time.Minute)))
	assert.ErrorIs(t, err, domain.ErrSessionConflict)

	// A paused session still holds the slot.
	paused := testutil.NewTestSession("w2", t0, testutil.WithState(domain.SessionPaused))
	require.NoError(t, repo.Create(ctx, paused))
	err = repo.Create(ctx, testutil.NewTestSession("w2", t0.Add(time.Minute)))
	assert.ErrorIs(t, err, domain.ErrSessionConflict)

	// Other workers are unaffected.
	require.NoError(t, repo.Create(ctx, testutil.NewTestSession("w3", t0)))
}

func TestSessionRepo_CompletedSessionsDoNotConflict(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestSession("w1", t0, testutil.Completed(60))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSession("w1", t0.Add(2*time.Hour), testutil.Completed(30))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSession("w1", t0.Add(5*time.Hour))))
}

func TestSessionRepo_GetOpenByWorker(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	open, err := repo.GetOpenByWorker(ctx, "w1")
	require.NoError(t, err)
	assert.Nil(t, open)

	// Completed sessions are not open.
	require.NoError(t, repo.Create(ctx, testutil.NewTestSession("w1", t0, testutil.Completed(60))))
	open, err = repo.GetOpenByWorker(ctx, "w1")
	require.NoError(t, err)
	assert.Nil(t, open)

	sess := testutil.NewTestSession("w1", t0.Add(2*time.Hour))
	require.NoError(t, repo.Create(ctx, sess))
	open, err = repo.GetOpenByWorker(ctx, "w1")
	require.NoError(t, err)
	require.NotNil(t, open)
	assert.Equal(t, sess.ID, open.ID)
}

func TestSessionRepo_UpdateRoundTrip(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	sess := testutil.NewTestSession("w1", t0)
	require.NoError(t, repo.Create(ctx, sess))

	require.NoError(t, sess.Close(t0.Add(95*time.Minute)))
	require.NoError(t, repo.Update(ctx, sess))

	fetched, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionCompleted, fetched.State)
	require.NotNil(t, fetched.DurationMin)
	assert.Equal(t, 95, *fetched.DurationMin)
	require.NotNil(t, fetched.EndedAt)
	assert.True(t, fetched.EndedAt.Equal(t0.Add(95*time.Minute)))
}

func TestSessionRepo_Update_NotFound(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))

	sess := testutil.NewTestSession("w1", t0)
	err := repo.Update(context.Background(), sess)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_ListFilters(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestSession("w1", t0, testutil.Completed(60), testutil.WithProjectID("p1"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSession("w1", t0.AddDate(0, 0, -3), testutil.Completed(30))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSession("w2", t0.Add(time.Hour))))

	all, err := repo.List(ctx, SessionFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byWorker, err := repo.List(ctx, SessionFilter{WorkerID: "w1"})
	require.NoError(t, err)
	assert.Len(t, byWorker, 2)

	byProject, err := repo.List(ctx, SessionFilter{ProjectID: "p1"})
	require.NoError(t, err)
	assert.Len(t, byProject, 1)

	byDate, err := repo.List(ctx, SessionFilter{OwnerDate: "2025-03-10"})
	require.NoError(t, err)
	assert.Len(t, byDate, 2)

	byWindow, err := repo.List(ctx, SessionFilter{DateFrom: "2025-03-08", DateTo: "2025-03-10"})
	require.NoError(t, err)
	assert.Len(t, byWindow, 2)

	byState, err := repo.List(ctx, SessionFilter{State: domain.SessionActive})
	require.NoError(t, err)
	assert.Len(t, byState, 1)
}

func TestSessionRepo_ListOrdersNewestFirst(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	oldest := testutil.NewTestSession("w1", t0.AddDate(0, 0, -2), testutil.Completed(10))
	middle := testutil.NewTestSession("w2", t0.AddDate(0, 0, -1), testutil.Completed(10))
	newest := testutil.NewTestSession("w3", t0)
	for _, s := range []*domain.TimeSession{oldest, middle, newest} {
		require.NoError(t, repo.Create(ctx, s))
	}

	all, err := repo.List(ctx, SessionFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, newest.ID, all[0].ID)
	assert.Equal(t, oldest.ID, all[2].ID)
}
