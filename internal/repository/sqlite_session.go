package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/shiftclock/internal/db"
	"github.com/alexanderramin/shiftclock/internal/domain"
)

// sessionColumns is the canonical SELECT column list for time_sessions.
const sessionColumns = `id, worker_id, project_id, task_id, started_at, ended_at,
		duration_min, state, note, owner_date, created_at, updated_at`

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo. The connection may be
// a *sql.DB or a *sql.Tx for transactional composition.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.TimeSession) error {
	query := `INSERT INTO time_sessions (id, worker_id, project_id, task_id, started_at, ended_at,
		duration_min, state, note, owner_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.WorkerID,
		s.ProjectID,
		s.TaskID,
		s.StartedAt.Format(time.RFC3339),
		nullableTimeToString(s.EndedAt, time.RFC3339),
		nullableIntToValue(s.DurationMin),
		string(s.State),
		s.Note,
		s.OwnerDate,
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		// The partial unique index on open sessions is the storage-level
		// guarantee that two racing clock-ins cannot both commit.
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("worker %s: %w", s.WorkerID, domain.ErrSessionConflict)
		}
		return fmt.Errorf("inserting time session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.TimeSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM time_sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	s, err := r.scanSession(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("time session %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return s, nil
}

func (r *SQLiteSessionRepo) GetOpenByWorker(ctx context.Context, workerID string) (*domain.TimeSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM time_sessions
		WHERE worker_id = ? AND state != 'completed'`
	row := r.db.QueryRowContext(ctx, query, workerID)
	s, err := r.scanSession(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.TimeSession) error {
	query := `UPDATE time_sessions SET worker_id = ?, project_id = ?, task_id = ?,
		started_at = ?, ended_at = ?, duration_min = ?, state = ?, note = ?,
		owner_date = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.WorkerID,
		s.ProjectID,
		s.TaskID,
		s.StartedAt.Format(time.RFC3339),
		nullableTimeToString(s.EndedAt, time.RFC3339),
		nullableIntToValue(s.DurationMin),
		string(s.State),
		s.Note,
		s.OwnerDate,
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating time session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating time session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("time session %s: %w", s.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSessionRepo) List(ctx context.Context, f SessionFilter) ([]*domain.TimeSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM time_sessions WHERE 1=1`
	var args []any

	if f.WorkerID != "" {
		query += ` AND worker_id = ?`
		args = append(args, f.WorkerID)
	}
	if f.ProjectID != "" {
		query += ` AND project_id = ?`
		args = append(args, f.ProjectID)
	}
	if f.OwnerDate != "" {
		query += ` AND owner_date = ?`
		args = append(args, f.OwnerDate)
	}
	if f.DateFrom != "" {
		query += ` AND owner_date >= ?`
		args = append(args, f.DateFrom)
	}
	if f.DateTo != "" {
		query += ` AND owner_date <= ?`
		args = append(args, f.DateTo)
	}
	if f.State != "" {
		query += ` AND state = ?`
		args = append(args, string(f.State))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing time sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

// scanSession scans a single session from a *sql.Row. sql.ErrNoRows is
// returned unwrapped so callers can distinguish miss handling.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.TimeSession, error) {
	var s domain.TimeSession
	var state, startedAtStr, createdAtStr, updatedAtStr string
	var endedAtStr sql.NullString
	var durationMin sql.NullInt64

	err := row.Scan(
		&s.ID, &s.WorkerID, &s.ProjectID, &s.TaskID, &startedAtStr, &endedAtStr,
		&durationMin, &state, &s.Note, &s.OwnerDate, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning time session: %w", err)
	}
	return r.populateSession(&s, state, startedAtStr, endedAtStr, durationMin, createdAtStr, updatedAtStr)
}

// scanSessions scans multiple sessions from *sql.Rows.
func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.TimeSession, error) {
	var sessions []*domain.TimeSession
	for rows.Next() {
		var s domain.TimeSession
		var state, startedAtStr, createdAtStr, updatedAtStr string
		var endedAtStr sql.NullString
		var durationMin sql.NullInt64

		err := rows.Scan(
			&s.ID, &s.WorkerID, &s.ProjectID, &s.TaskID, &startedAtStr, &endedAtStr,
			&durationMin, &state, &s.Note, &s.OwnerDate, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning time session row: %w", err)
		}

		session, parseErr := r.populateSession(&s, state, startedAtStr, endedAtStr, durationMin, createdAtStr, updatedAtStr)
		if parseErr != nil {
			return nil, parseErr
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating time sessions: %w", err)
	}
	return sessions, nil
}

// populateSession fills in parsed fields on a TimeSession after scanning raw values.
func (r *SQLiteSessionRepo) populateSession(
	s *domain.TimeSession,
	state, startedAtStr string,
	endedAtStr sql.NullString,
	durationMin sql.NullInt64,
	createdAtStr, updatedAtStr string,
) (*domain.TimeSession, error) {
	var parseErr error
	s.State = domain.SessionState(state)
	s.StartedAt, parseErr = time.Parse(time.RFC3339, startedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing started_at: %w", parseErr)
	}
	s.EndedAt = parseNullableTime(endedAtStr, time.RFC3339)
	s.DurationMin = nullableIntFromSQL(durationMin)
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	s.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return s, nil
}
