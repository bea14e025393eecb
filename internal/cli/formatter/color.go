package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/shiftclock/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StateBadge returns a colored indicator for a session state.
func StateBadge(state domain.SessionState) string {
	switch state {
	case domain.SessionActive:
		return StyleGreen.Render("● Active")
	case domain.SessionPaused:
		return StyleYellow.Render("◐ Paused")
	case domain.SessionCompleted:
		return StyleBlue.Render("✔ Completed")
	default:
		return StyleDim.Render(string(state))
	}
}

// ShiftBadge returns a colored indicator for a schedule entry state.
func ShiftBadge(state domain.ScheduleState) string {
	switch state {
	case domain.ShiftScheduled:
		return StyleBlue.Render("○ Scheduled")
	case domain.ShiftCompleted:
		return StyleGreen.Render("✔ Completed")
	case domain.ShiftMissed:
		return StyleRed.Render("✖ Missed")
	default:
		return StyleDim.Render(string(state))
	}
}

// WorkerStatusPill returns a colored indicator for a roster worker status.
func WorkerStatusPill(status domain.WorkerStatus) string {
	if status == domain.WorkerActive {
		return StyleGreen.Render("● Active")
	}
	return StyleDim.Render("○ Inactive")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
