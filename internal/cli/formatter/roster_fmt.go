package formatter

import (
	"github.com/alexanderramin/shiftclock/internal/domain"
)

// FormatWorkerList formats roster workers into a styled table.
func FormatWorkerList(workers []*domain.Worker) string {
	headers := []string{"ID", "NAME", "POSITION", "DEPARTMENT", "STATUS"}
	rows := make([][]string, 0, len(workers))

	for _, w := range workers {
		rows = append(rows, []string{
			TruncID(w.ID),
			Bold(w.DisplayName()),
			StyleFg.Render(w.Position),
			StyleFg.Render(w.Department),
			WorkerStatusPill(w.Status),
		})
	}

	return RenderBox("Workers", RenderTable(headers, rows))
}

// FormatProjectList formats roster projects into a styled table.
func FormatProjectList(projects []*domain.Project) string {
	headers := []string{"ID", "NAME", "STATUS"}
	rows := make([][]string, 0, len(projects))

	for _, p := range projects {
		status := StyleGreen.Render("● Active")
		if p.Status == domain.ProjectArchived {
			status = StyleDim.Render("✖ Archived")
		}
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.Name),
			status,
		})
	}

	return RenderBox("Projects", RenderTable(headers, rows))
}
