package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// time_sessions deliberately carries no foreign keys to workers/projects:
// roster rows are managed elsewhere and may be deleted out from under a
// session, so stale references are resolved at read time instead.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS workers (
		id         TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name  TEXT NOT NULL DEFAULT '',
		position   TEXT NOT NULL DEFAULT '',
		department TEXT NOT NULL DEFAULT '',
		status     TEXT NOT NULL DEFAULT 'active'
		           CHECK(status IN ('active','inactive')),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		status     TEXT NOT NULL DEFAULT 'active'
		           CHECK(status IN ('active','archived')),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS time_sessions (
		id           TEXT PRIMARY KEY,
		worker_id    TEXT NOT NULL,
		project_id   TEXT NOT NULL DEFAULT '',
		task_id      TEXT NOT NULL DEFAULT '',
		started_at   TEXT NOT NULL,
		ended_at     TEXT,
		duration_min INTEGER,
		state        TEXT NOT NULL DEFAULT 'active'
		             CHECK(state IN ('active','paused','completed')),
		note         TEXT NOT NULL DEFAULT '',
		owner_date   TEXT NOT NULL,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	// The single-open-session-per-worker invariant, enforced where it must
	// be: any second open row for a worker fails the insert atomically.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_time_sessions_open_worker
		ON time_sessions(worker_id) WHERE state != 'completed'`,

	`CREATE INDEX IF NOT EXISTS idx_time_sessions_owner_date ON time_sessions(owner_date)`,
	`CREATE INDEX IF NOT EXISTS idx_time_sessions_worker ON time_sessions(worker_id)`,

	`CREATE TABLE IF NOT EXISTS schedule_entries (
		id         TEXT PRIMARY KEY,
		worker_id  TEXT NOT NULL,
		shift_date TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time   TEXT NOT NULL,
		break_min  INTEGER NOT NULL DEFAULT 30,
		state      TEXT NOT NULL DEFAULT 'scheduled'
		           CHECK(state IN ('scheduled','completed','missed')),
		note       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_schedule_entries_worker ON schedule_entries(worker_id)`,
	`CREATE INDEX IF NOT EXISTS idx_schedule_entries_date ON schedule_entries(shift_date)`,
}
