package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/shiftclock/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// FormatDailySummary formats the daily rollup card. Open sessions are already
// folded into the totals with their live elapsed minutes.
func FormatDailySummary(s domain.DailySummary) string {
	var b strings.Builder

	b.WriteString(Bold(DayLabel(s.Date)) + "\n\n")
	b.WriteString(summaryLine("Total time", Bold(FormatMinutes(s.TotalMinutes))))
	b.WriteString(summaryLine("Workers on the clock", StyleGreen.Render(fmt.Sprintf("%d", s.DistinctActiveWorkers))))
	b.WriteString(summaryLine("Completed sessions", StyleFg.Render(fmt.Sprintf("%d", s.CompletedSessionCount))))

	return RenderBox("Daily Report", b.String())
}

// FormatWeeklySummary formats the weekly rollup card with the completion rate
// over the same window.
func FormatWeeklySummary(s domain.WeeklySummary, completionRate int) string {
	var b strings.Builder

	window := fmt.Sprintf("%s to %s", DayLabel(s.WindowStart), DayLabel(s.WindowEnd))
	b.WriteString(Bold(window) + "\n\n")
	b.WriteString(summaryLine("Total time", Bold(FormatMinutes(s.TotalMinutes))))
	b.WriteString(summaryLine("Daily average", StyleFg.Render(FormatMinutes(s.AverageMinutesPerDay))))
	b.WriteString(summaryLine("Completed sessions", StyleFg.Render(fmt.Sprintf("%d", s.CompletedSessionCount))))
	b.WriteString(summaryLine("Completion rate", completionRateStyle(completionRate).Render(fmt.Sprintf("%d%%", completionRate))))

	return RenderBox("Weekly Report", b.String())
}

func summaryLine(label, value string) string {
	const labelWidth = 22
	pad := labelWidth - len(label)
	if pad < 1 {
		pad = 1
	}
	return Dim(label) + strings.Repeat(" ", pad) + value + "\n"
}

func completionRateStyle(rate int) lipgloss.Style {
	switch {
	case rate >= 80:
		return StyleGreen
	case rate >= 50:
		return StyleYellow
	default:
		return StyleRed
	}
}
