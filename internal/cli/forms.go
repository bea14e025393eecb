package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/shiftclock/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// shiftclockHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func shiftclockHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// formSelectWorker creates a huh form to pick a worker from the roster.
// Returns nil when the roster is empty.
func formSelectWorker(ctx context.Context, app *App, result *string) *huh.Form {
	workers, err := app.Roster.Workers(ctx)
	if err != nil || len(workers) == 0 {
		return nil
	}

	options := make([]huh.Option[string], 0, len(workers))
	for _, w := range workers {
		label := w.DisplayName()
		if w.Position != "" {
			label = fmt.Sprintf("%s - %s", label, w.Position)
		}
		options = append(options, huh.NewOption(label, w.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Who is clocking in?").
				Options(options...).
				Value(result),
		),
	).WithTheme(shiftclockHuhTheme()).WithShowHelp(false)
}

// formSelectProject creates a huh form to pick an optional project. The first
// option leaves the session unassigned.
func formSelectProject(ctx context.Context, app *App, result *string) *huh.Form {
	projects, err := app.Roster.Projects(ctx)
	if err != nil || len(projects) == 0 {
		return nil
	}

	options := make([]huh.Option[string], 0, len(projects)+1)
	options = append(options, huh.NewOption("Unassigned", ""))
	for _, p := range projects {
		options = append(options, huh.NewOption(p.Name, p.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which Project?").
				Options(options...).
				Value(result),
		),
	).WithTheme(shiftclockHuhTheme()).WithShowHelp(false)
}

// formInputNote creates a huh form for an optional session note.
func formInputNote(result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Note (optional)").
				Placeholder("front register").
				Value(result),
		),
	).WithTheme(shiftclockHuhTheme()).WithShowHelp(false)
}

// validateDate accepts a YYYY-MM-DD date string.
func validateDate(s string) error {
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateWallClock accepts an HH:MM wall-clock time string.
func validateWallClock(s string) error {
	if _, err := time.Parse("15:04", s); err != nil {
		return fmt.Errorf("use HH:MM format")
	}
	return nil
}
