package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/shiftclock/internal/domain"
	"github.com/alexanderramin/shiftclock/internal/repository"
	"github.com/alexanderramin/shiftclock/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestE2E_ConcurrentClockIn_SameWorker drives the full registry stack from
// multiple goroutines, simulating a worker's badge being scanned at two
// terminals at once. Exactly one clock-in may win; every loser must see
// domain.ErrSessionConflict.
//
// SQLite allows a single writer at a time, so a command may transiently fail
// with SQLITE_BUSY; we retry with backoff, which is what a real terminal does
// when a scan bounces.
func TestE2E_ConcurrentClockIn_SameWorker(t *testing.T) {
	database := testutil.NewFileTestDB(t)
	svc := NewSessionService(
		repository.NewSQLiteSessionRepo(database),
		testutil.NewTestUoW(database),
		SystemClock{},
	)
	ctx := context.Background()

	retryClockIn := func(req ClockInRequest) error {
		var err error
		for attempt := 0; attempt < 5; attempt++ {
			_, err = svc.ClockIn(ctx, req)
			if err == nil || !strings.Contains(err.Error(), "busy") {
				return err
			}
			time.Sleep(time.Duration(attempt+1) * 10 * time.Millisecond)
		}
		return err
	}

	const terminals = 6
	var wg sync.WaitGroup
	results := make(chan error, terminals)

	for i := 0; i < terminals; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- retryClockIn(ClockInRequest{WorkerID: "w1"})
		}()
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, domain.ErrSessionConflict):
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, terminals-1, conflicts)

	// At no observable point do two open sessions exist for the worker.
	open, err := svc.List(ctx, repository.SessionFilter{WorkerID: "w1", State: domain.SessionActive})
	require.NoError(t, err)
	assert.Len(t, open, 1)
}

// TestE2E_ConcurrentClockIn_DistinctWorkers verifies commands for different
// workers proceed independently.
func TestE2E_ConcurrentClockIn_DistinctWorkers(t *testing.T) {
	database := testutil.NewFileTestDB(t)
	svc := NewSessionService(
		repository.NewSQLiteSessionRepo(database),
		testutil.NewTestUoW(database),
		SystemClock{},
	)
	ctx := context.Background()

	workerIDs := []string{"w1", "w2", "w3", "w4", "w5"}
	var wg sync.WaitGroup
	results := make(chan error, len(workerIDs))

	for _, id := range workerIDs {
		wg.Add(1)
		go func(workerID string) {
			defer wg.Done()
			var err error
			for attempt := 0; attempt < 5; attempt++ {
				_, err = svc.ClockIn(ctx, ClockInRequest{WorkerID: workerID})
				if err == nil || !strings.Contains(err.Error(), "busy") {
					break
				}
				time.Sleep(time.Duration(attempt+1) * 10 * time.Millisecond)
			}
			results <- err
		}(id)
	}
	wg.Wait()
	close(results)

	for err := range results {
		assert.NoError(t, err)
	}

	active, err := svc.List(ctx, repository.SessionFilter{State: domain.SessionActive})
	require.NoError(t, err)
	assert.Len(t, active, len(workerIDs))
}
