package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/shiftclock/internal/cli/formatter"
	"github.com/alexanderramin/shiftclock/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// watchTickMsg drives the once-per-second refresh.
type watchTickMsg time.Time

// watchSessionMsg carries the worker's freshly loaded open session.
type watchSessionMsg struct {
	sess *domain.TimeSession
	err  error
}

type watchKeyMap struct {
	Quit key.Binding
}

// watchModel is the live timer view for one worker. The engine stays pure;
// the model just re-reads the open session on every tick.
type watchModel struct {
	app        *App
	workerID   string
	workerName string
	sess       *domain.TimeSession
	err        error
	spin       spinner.Model
	keys       watchKeyMap
	quitting   bool
}

func newWatchModel(app *App, workerID, workerName string) watchModel {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(formatter.StylePurple),
	)
	return watchModel{
		app:        app,
		workerID:   workerID,
		workerName: workerName,
		spin:       sp,
		keys: watchKeyMap{
			Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		},
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadSession(), watchTick())
}

func watchTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) loadSession() tea.Cmd {
	app := m.app
	workerID := m.workerID
	return func() tea.Msg {
		sess, err := app.Sessions.ActiveSessionFor(context.Background(), workerID)
		return watchSessionMsg{sess: sess, err: err}
	}
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case watchTickMsg:
		return m, tea.Batch(m.loadSession(), watchTick())

	case watchSessionMsg:
		m.sess = msg.sess
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m watchModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render(fmt.Sprintf("Error: %v", m.err)) + "\n")
	}

	switch {
	case m.sess == nil:
		b.WriteString(formatter.FormatClockedOut(m.workerName))
	default:
		elapsed := m.app.clock().Now().UTC().Sub(m.sess.StartedAt)
		b.WriteString(fmt.Sprintf("%s  %s\n", formatter.Bold(m.workerName), formatter.StateBadge(m.sess.State)))
		b.WriteString(fmt.Sprintf("Started %s\n", formatter.ClockTime(m.sess.StartedAt)))
		b.WriteString(formatter.Bold(formatWatchElapsed(elapsed)) + "\n")
	}

	b.WriteString("\n" + m.spin.View() + formatter.Dim("watching") + "\n")
	b.WriteString(formatter.Dim("q to quit"))

	return formatter.RenderBox("Time Clock", b.String())
}

// formatWatchElapsed renders a live duration down to seconds, e.g. "2h 05m 33s".
func formatWatchElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%dh %02dm %02ds", h, m, s)
	}
	return fmt.Sprintf("%dm %02ds", m, s)
}

func newClockWatchCmd(app *App) *cobra.Command {
	var workerID string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Live timer for a worker's open session",
		RunE: func(cmd *cobra.Command, args []string) error {
			name := app.Query.ResolveWorkerName(context.Background(), workerID)
			p := tea.NewProgram(newWatchModel(app, workerID, name))
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&workerID, "worker", "", "Worker ID")
	_ = cmd.MarkFlagRequired("worker")

	return cmd
}
