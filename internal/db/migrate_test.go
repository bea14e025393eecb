package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"workers", "projects", "time_sessions", "schedule_entries"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_IsIdempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}

func TestMigrate_OpenSessionIndexIsPartialUnique(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// Two completed sessions for one worker are fine.
	insert := `INSERT INTO time_sessions (id, worker_id, started_at, state, owner_date, created_at, updated_at)
		VALUES (?, 'w1', '2025-03-10T09:00:00Z', ?, '2025-03-10', '2025-03-10T09:00:00Z', '2025-03-10T09:00:00Z')`
	_, err = database.Exec(insert, "s1", "completed")
	require.NoError(t, err)
	_, err = database.Exec(insert, "s2", "completed")
	require.NoError(t, err)

	// One open session is fine; a second open row must fail.
	_, err = database.Exec(insert, "s3", "active")
	require.NoError(t, err)
	_, err = database.Exec(insert, "s4", "paused")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE")
}
