package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/shiftclock/internal/db"
	"github.com/alexanderramin/shiftclock/internal/domain"
	"github.com/alexanderramin/shiftclock/internal/repository"
	"github.com/google/uuid"
)

type scheduleService struct {
	schedules repository.ScheduleRepo
	uow       db.UnitOfWork
	clock     Clock
	observer  UseCaseObserver
}

// NewScheduleService creates the planned-shift lifecycle service.
func NewScheduleService(schedules repository.ScheduleRepo, uow db.UnitOfWork, clock Clock, observers ...UseCaseObserver) ScheduleService {
	return &scheduleService{
		schedules: schedules,
		uow:       uow,
		clock:     clock,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *scheduleService) Create(ctx context.Context, req ScheduleRequest) (*domain.ScheduleEntry, error) {
	started := s.clock.Now()
	if req.WorkerID == "" {
		return nil, fmt.Errorf("schedule: worker id is required")
	}
	if req.ShiftDate == "" {
		return nil, fmt.Errorf("schedule: shift date is required")
	}

	breakMin := req.BreakMin
	if breakMin == 0 {
		breakMin = domain.DefaultBreakMin
	}

	now := started.UTC()
	entry := &domain.ScheduleEntry{
		ID:        uuid.New().String(),
		WorkerID:  req.WorkerID,
		ShiftDate: req.ShiftDate,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		BreakMin:  breakMin,
		State:     domain.ShiftScheduled,
		Note:      req.Note,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.schedules.Create(ctx, entry)
	s.observe(ctx, "schedule_create", started, err, map[string]any{"worker_id": req.WorkerID})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *scheduleService) MarkCompleted(ctx context.Context, id string) (*domain.ScheduleEntry, error) {
	return s.mark(ctx, "schedule_complete", id, (*domain.ScheduleEntry).MarkCompleted)
}

func (s *scheduleService) MarkMissed(ctx context.Context, id string) (*domain.ScheduleEntry, error) {
	return s.mark(ctx, "schedule_miss", id, (*domain.ScheduleEntry).MarkMissed)
}

// mark overwrites an entry's state inside one transaction. There is no
// transition guard: entries may be re-marked, last write wins.
func (s *scheduleService) mark(
	ctx context.Context,
	name string,
	id string,
	apply func(*domain.ScheduleEntry, time.Time),
) (*domain.ScheduleEntry, error) {
	started := s.clock.Now()
	var entry *domain.ScheduleEntry

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSchedules := repository.NewSQLiteScheduleRepo(tx)

		e, err := txSchedules.GetByID(ctx, id)
		if err != nil {
			return err
		}
		apply(e, started.UTC())
		if err := txSchedules.Update(ctx, e); err != nil {
			return err
		}
		entry = e
		return nil
	})
	s.observe(ctx, name, started, err, map[string]any{"schedule_id": id})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *scheduleService) List(ctx context.Context, f repository.ScheduleFilter) ([]*domain.ScheduleEntry, error) {
	return s.schedules.List(ctx, f)
}

func (s *scheduleService) observe(ctx context.Context, name string, started time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  s.clock.Now().Sub(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
}
