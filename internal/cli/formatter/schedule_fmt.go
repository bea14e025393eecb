package formatter

import (
	"github.com/alexanderramin/shiftclock/internal/service"
)

// FormatScheduleList formats schedule views into a styled table.
func FormatScheduleList(views []service.ScheduleView) string {
	headers := []string{"ID", "WORKER", "DATE", "SHIFT", "STATE", "NOTE"}
	rows := make([][]string, 0, len(views))

	for _, v := range views {
		rows = append(rows, []string{
			TruncID(v.Entry.ID),
			Bold(v.WorkerName),
			StyleFg.Render(DayLabel(v.Entry.ShiftDate)),
			ShiftWindow(v.Entry.StartTime, v.Entry.EndTime, v.Entry.BreakMin),
			ShiftBadge(v.Entry.State),
			Dim(v.Entry.Note),
		})
	}

	return RenderBox("Schedule", RenderTable(headers, rows))
}
