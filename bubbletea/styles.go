package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/fitcoach"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	UserMsg   lipgloss.Style
	Workout   lipgloss.Style
	Nutrition lipgloss.Style
	Warning   lipgloss.Style
	Success   lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t fitcoach.Theme) Styles {
	return Styles{
		UserMsg:   lipgloss.NewStyle().Foreground(ansiColor(t.UserMsg)).Bold(true),
		Workout:   lipgloss.NewStyle().Foreground(ansiColor(t.Workout)).Bold(true),
		Nutrition: lipgloss.NewStyle().Foreground(ansiColor(t.Nutrition)).Bold(true),
		Warning:   lipgloss.NewStyle().Foreground(ansiColor(t.Warning)),
		Success:   lipgloss.NewStyle().Foreground(ansiColor(t.Success)),
		Muted:     lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Accent:    lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
	}
}

// ForIntent returns the heading style for plans of the given category.
// Anything that is not a plan uses Muted.
func (s Styles) ForIntent(i fitcoach.Intent) lipgloss.Style {
	switch i {
	case fitcoach.IntentWorkout:
		return s.Workout
	case fitcoach.IntentNutrition:
		return s.Nutrition
	default:
		return s.Muted
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
