package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/shiftclock/internal/domain"
	"github.com/alexanderramin/shiftclock/internal/repository"
	"github.com/alexanderramin/shiftclock/internal/rollup"
)

type summaryService struct {
	sessions repository.SessionRepo
	clock    Clock
}

// NewSummaryService creates the aggregation façade: it loads the relevant
// session window and delegates the arithmetic to the pure rollup functions
// with the clock's current instant.
func NewSummaryService(sessions repository.SessionRepo, clock Clock) SummaryService {
	return &summaryService{sessions: sessions, clock: clock}
}

func (s *summaryService) Daily(ctx context.Context, date string) (domain.DailySummary, error) {
	sessions, err := s.sessions.List(ctx, repository.SessionFilter{OwnerDate: date})
	if err != nil {
		return domain.DailySummary{}, fmt.Errorf("daily summary for %s: %w", date, err)
	}
	return rollup.Daily(sessions, date, s.clock.Now().UTC()), nil
}

func (s *summaryService) Weekly(ctx context.Context, refDate string) (domain.WeeklySummary, error) {
	now := s.clock.Now().UTC()
	start, end := rollup.WeekWindow(refDate, now)
	sessions, err := s.sessions.List(ctx, repository.SessionFilter{DateFrom: start, DateTo: end})
	if err != nil {
		return domain.WeeklySummary{}, fmt.Errorf("weekly summary ending %s: %w", refDate, err)
	}
	return rollup.Weekly(sessions, end, now), nil
}

func (s *summaryService) CompletionRate(ctx context.Context, f repository.SessionFilter) (int, error) {
	sessions, err := s.sessions.List(ctx, f)
	if err != nil {
		return 0, fmt.Errorf("completion rate: %w", err)
	}
	return rollup.CompletionRate(sessions), nil
}

// Today returns the clock's current calendar date, the default reference for
// CLI reports.
func Today(clock Clock) string {
	return clock.Now().UTC().Format(time.DateOnly)
}
