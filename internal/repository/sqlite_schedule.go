package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/shiftclock/internal/db"
	"github.com/alexanderramin/shiftclock/internal/domain"
)

// scheduleColumns is the canonical SELECT column list for schedule_entries.
const scheduleColumns = `id, worker_id, shift_date, start_time, end_time,
		break_min, state, note, created_at, updated_at`

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
type SQLiteScheduleRepo struct {
	db db.DBTX
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(conn db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: conn}
}

func (r *SQLiteScheduleRepo) Create(ctx context.Context, e *domain.ScheduleEntry) error {
	query := `INSERT INTO schedule_entries (id, worker_id, shift_date, start_time, end_time,
		break_min, state, note, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.WorkerID,
		e.ShiftDate,
		e.StartTime,
		e.EndTime,
		e.BreakMin,
		string(e.State),
		e.Note,
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting schedule entry: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) GetByID(ctx context.Context, id string) (*domain.ScheduleEntry, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedule_entries WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var e domain.ScheduleEntry
	var state, createdAtStr, updatedAtStr string
	err := row.Scan(
		&e.ID, &e.WorkerID, &e.ShiftDate, &e.StartTime, &e.EndTime,
		&e.BreakMin, &state, &e.Note, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("schedule entry %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning schedule entry: %w", err)
	}
	return populateSchedule(&e, state, createdAtStr, updatedAtStr)
}

func (r *SQLiteScheduleRepo) Update(ctx context.Context, e *domain.ScheduleEntry) error {
	query := `UPDATE schedule_entries SET worker_id = ?, shift_date = ?, start_time = ?,
		end_time = ?, break_min = ?, state = ?, note = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		e.WorkerID,
		e.ShiftDate,
		e.StartTime,
		e.EndTime,
		e.BreakMin,
		string(e.State),
		e.Note,
		e.UpdatedAt.Format(time.RFC3339),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating schedule entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating schedule entry: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("schedule entry %s: %w", e.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteScheduleRepo) List(ctx context.Context, f ScheduleFilter) ([]*domain.ScheduleEntry, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedule_entries WHERE 1=1`
	var args []any

	if f.WorkerID != "" {
		query += ` AND worker_id = ?`
		args = append(args, f.WorkerID)
	}
	if f.ShiftDate != "" {
		query += ` AND shift_date = ?`
		args = append(args, f.ShiftDate)
	}
	if f.State != "" {
		query += ` AND state = ?`
		args = append(args, string(f.State))
	}
	query += ` ORDER BY shift_date DESC, start_time`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing schedule entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.ScheduleEntry
	for rows.Next() {
		var e domain.ScheduleEntry
		var state, createdAtStr, updatedAtStr string
		err := rows.Scan(
			&e.ID, &e.WorkerID, &e.ShiftDate, &e.StartTime, &e.EndTime,
			&e.BreakMin, &state, &e.Note, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning schedule entry row: %w", err)
		}
		entry, parseErr := populateSchedule(&e, state, createdAtStr, updatedAtStr)
		if parseErr != nil {
			return nil, parseErr
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule entries: %w", err)
	}
	return entries, nil
}

// populateSchedule fills in parsed fields on a ScheduleEntry after scanning raw strings.
func populateSchedule(e *domain.ScheduleEntry, state, createdAtStr, updatedAtStr string) (*domain.ScheduleEntry, error) {
	var parseErr error
	e.State = domain.ScheduleState(state)
	e.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	e.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return e, nil
}
