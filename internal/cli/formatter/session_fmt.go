package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/shiftclock/internal/service"
)

// FormatSessionList formats session views into a styled table.
func FormatSessionList(views []service.SessionView) string {
	headers := []string{"ID", "WORKER", "PROJECT", "STARTED", "ELAPSED", "STATE", "NOTE"}
	rows := make([][]string, 0, len(views))

	for _, v := range views {
		notePreview := v.Session.Note
		if len(notePreview) > 40 {
			notePreview = notePreview[:37] + "..."
		}
		rows = append(rows, []string{
			TruncID(v.Session.ID),
			Bold(v.WorkerName),
			StyleFg.Render(v.ProjectName),
			HumanTimestamp(v.Session.StartedAt),
			StyleFg.Render(FormatMinutes(v.ElapsedMin)),
			StateBadge(v.Session.State),
			Dim(notePreview),
		})
	}

	return RenderBox("Sessions", RenderTable(headers, rows))
}

// FormatClockStatus renders a single worker's open-session card.
func FormatClockStatus(v service.SessionView) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(v.WorkerName), StateBadge(v.Session.State)))
	b.WriteString(fmt.Sprintf("Started %s, %s on the clock\n",
		ClockTime(v.Session.StartedAt),
		Bold(FormatMinutes(v.ElapsedMin)),
	))
	b.WriteString(fmt.Sprintf("Project: %s\n", StyleFg.Render(v.ProjectName)))
	if v.Session.Note != "" {
		b.WriteString(Dim(v.Session.Note) + "\n")
	}
	b.WriteString(Dim("Session " + v.Session.ID))

	return RenderBox("On the clock", b.String())
}

// FormatClockedOut renders the status line for a worker with no open session.
func FormatClockedOut(workerName string) string {
	return fmt.Sprintf("%s is %s\n", Bold(workerName), Dim("clocked out"))
}
