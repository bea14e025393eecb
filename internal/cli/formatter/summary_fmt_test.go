package formatter

import (
	"testing"

	"github.com/alexanderramin/shiftclock/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatDailySummary(t *testing.T) {
	out := FormatDailySummary(domain.DailySummary{
		Date:                  "2025-03-10",
		TotalMinutes:          455,
		DistinctActiveWorkers: 3,
		CompletedSessionCount: 5,
	})

	assert.Contains(t, out, "DAILY REPORT")
	assert.Contains(t, out, "Mon, Mar 10")
	assert.Contains(t, out, "7h 35m")
	assert.Contains(t, out, "Workers on the clock")
	assert.Contains(t, out, "Completed sessions")
}

func TestFormatWeeklySummary(t *testing.T) {
	out := FormatWeeklySummary(domain.WeeklySummary{
		WindowStart:           "2025-03-04",
		WindowEnd:             "2025-03-10",
		TotalMinutes:          600,
		CompletedSessionCount: 4,
		AverageMinutesPerDay:  85,
	}, 50)

	assert.Contains(t, out, "WEEKLY REPORT")
	assert.Contains(t, out, "Tue, Mar 4")
	assert.Contains(t, out, "Mon, Mar 10")
	assert.Contains(t, out, "10h")
	assert.Contains(t, out, "1h 25m")
	assert.Contains(t, out, "50%")
}
