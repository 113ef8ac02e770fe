package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/peak/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

type promptAnswers struct {
	Input   string
	Minutes int
}

// peakHuhTheme returns a huh theme using the formatter palette.
func peakHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// sessionForm asks how the user feels and for how long they will work.
// The minutes field binds to minutesStr; parse it with parseMinutes.
func sessionForm(input, minutesStr *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("How are you feeling?").
				Description("Mood, aches, anything. Leave blank for a general plan.").
				Placeholder("stressed, and my back hurts").
				Value(input),
			huh.NewInput().
				Title("Session length (minutes)").
				Placeholder(*minutesStr).
				Value(minutesStr).
				Validate(validatePositiveInt),
		),
	).WithTheme(peakHuhTheme()).WithShowHelp(false)
}

func runSessionPrompt(a *promptAnswers) error {
	minutesStr := strconv.Itoa(a.Minutes)
	if err := sessionForm(&a.Input, &minutesStr).Run(); err != nil {
		return fmt.Errorf("prompt: %w", err)
	}
	minutes, err := parseMinutes(minutesStr, a.Minutes)
	if err != nil {
		return err
	}
	a.Minutes = minutes
	return nil
}

// validatePositiveInt accepts empty or a positive integer.
func validatePositiveInt(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// parseMinutes reads a validated minutes answer; blank keeps fallback.
func parseMinutes(s string, fallback int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	if err := validatePositiveInt(s); err != nil {
		return 0, err
	}
	return strconv.Atoi(s)
}
