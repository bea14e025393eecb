package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/shiftclock/internal/domain"
	"github.com/alexanderramin/shiftclock/internal/service"
	"github.com/stretchr/testify/assert"
)

func sampleView(state domain.SessionState) service.SessionView {
	return service.SessionView{
		Session: &domain.TimeSession{
			ID:        "0193b2aa-1111-2222-3333-444455556666",
			WorkerID:  "w1",
			StartedAt: time.Now().Add(-95 * time.Minute),
			State:     state,
			Note:      "front register",
		},
		WorkerName:  "Dana Reyes",
		ProjectName: "Unassigned",
		ElapsedMin:  95,
	}
}

func TestFormatSessionList(t *testing.T) {
	out := FormatSessionList([]service.SessionView{sampleView(domain.SessionActive)})

	assert.Contains(t, out, "SESSIONS")
	assert.Contains(t, out, "Dana Reyes")
	assert.Contains(t, out, "Unassigned")
	assert.Contains(t, out, "1h 35m")
	assert.Contains(t, out, "Active")
	assert.Contains(t, out, "front register")
}

func TestFormatClockStatus(t *testing.T) {
	out := FormatClockStatus(sampleView(domain.SessionPaused))

	assert.Contains(t, out, "ON THE CLOCK")
	assert.Contains(t, out, "Dana Reyes")
	assert.Contains(t, out, "Paused")
	assert.Contains(t, out, "1h 35m")
}

func TestFormatClockedOut(t *testing.T) {
	out := FormatClockedOut("Dana Reyes")
	assert.Contains(t, out, "Dana Reyes")
	assert.Contains(t, out, "clocked out")
}
