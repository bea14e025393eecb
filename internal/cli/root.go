package cli

import (
	"github.com/alexanderramin/shiftclock/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Sessions  service.SessionService
	Summaries service.SummaryService
	Schedules service.ScheduleService
	Query     service.QueryService
	Roster    service.RosterService
	Clock     service.Clock

	// IsInteractive reports whether stdin is a terminal, gating the
	// interactive clock-in form.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) clock() service.Clock {
	if a.Clock != nil {
		return a.Clock
	}
	return service.SystemClock{}
}

// NewRootCmd creates the top-level "shiftclock" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "shiftclock",
		Short: "Workforce time clock, schedules and reports",
	}

	root.AddCommand(
		newClockCmd(app),
		newSessionCmd(app),
		newScheduleCmd(app),
		newReportCmd(app),
		newRosterCmd(app),
	)

	return root
}
