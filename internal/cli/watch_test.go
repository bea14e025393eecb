package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/shiftclock/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchModel_ShowsClockedOutWhenNoSession(t *testing.T) {
	app, _ := testApp(t)
	m := newWatchModel(app, "w1", "Dana Reyes")

	updated, _ := m.Update(watchSessionMsg{sess: nil})
	view := updated.View()

	assert.Contains(t, view, "TIME CLOCK")
	assert.Contains(t, view, "clocked out")
	assert.Contains(t, view, "q to quit")
}

func TestWatchModel_ShowsLiveElapsed(t *testing.T) {
	app, clock := testApp(t)
	m := newWatchModel(app, "w1", "Dana Reyes")

	sess := &domain.TimeSession{
		ID:        "s1",
		WorkerID:  "w1",
		StartedAt: t0,
		State:     domain.SessionActive,
	}
	clock.Advance(125*time.Minute + 33*time.Second)

	updated, _ := m.Update(watchSessionMsg{sess: sess})
	view := updated.View()

	assert.Contains(t, view, "Dana Reyes")
	assert.Contains(t, view, "Active")
	assert.Contains(t, view, "2h 05m 33s")
}

func TestWatchModel_TickReschedules(t *testing.T) {
	app, _ := testApp(t)
	m := newWatchModel(app, "w1", "Dana Reyes")

	_, cmd := m.Update(watchTickMsg(time.Now()))
	require.NotNil(t, cmd)
}

func TestWatchModel_QuitKeys(t *testing.T) {
	app, _ := testApp(t)
	m := newWatchModel(app, "w1", "Dana Reyes")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Empty(t, updated.View())
}

func TestFormatWatchElapsed(t *testing.T) {
	assert.Equal(t, "0m 00s", formatWatchElapsed(-time.Second))
	assert.Equal(t, "5m 07s", formatWatchElapsed(5*time.Minute+7*time.Second))
	assert.Equal(t, "2h 05m 33s", formatWatchElapsed(2*time.Hour+5*time.Minute+33*time.Second))
}
