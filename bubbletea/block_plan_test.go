package bubbletea_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/fitcoach"
	bt "github.com/fwojciec/fitcoach/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlan(intent fitcoach.Intent, number int, content string) *bt.PlanBlock {
	theme := fitcoach.DefaultTheme()
	return bt.NewPlanBlock(intent, number, content, theme, bt.NewStyles(theme))
}

func TestPlanBlock_Title(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Workout Plan 3", newPlan(fitcoach.IntentWorkout, 3, "").Title())
	assert.Equal(t, "Meal Plan 1", newPlan(fitcoach.IntentNutrition, 1, "").Title())
}

func TestPlanBlock_View(t *testing.T) {
	t.Parallel()

	content := "## Weekly Grid\n\nMon - Squat 3x10\n\nTue - Rest day"

	t.Run("collapsed shows title and preview only", func(t *testing.T) {
		t.Parallel()
		view := newPlan(fitcoach.IntentWorkout, 1, content).View(80)
		assert.Contains(t, view, "▶")
		assert.Contains(t, view, "Workout Plan 1")
		assert.Contains(t, view, "Weekly Grid")
		assert.NotContains(t, view, "Tue - Rest day")
	})

	t.Run("toggle expands full plan", func(t *testing.T) {
		t.Parallel()
		block := newPlan(fitcoach.IntentWorkout, 1, content)
		updated, _ := block.Update(bt.ToggleMsg{})
		view := updated.View(80)
		assert.Contains(t, view, "▼")
		assert.Contains(t, view, "Tue - Rest day")
	})

	t.Run("toggle twice collapses again", func(t *testing.T) {
		t.Parallel()
		block := newPlan(fitcoach.IntentNutrition, 1, content)
		block.Update(bt.ToggleMsg{})
		block.Update(bt.ToggleMsg{})
		assert.NotContains(t, block.View(80), "Tue - Rest day")
	})

	t.Run("unrecognized message does not change state", func(t *testing.T) {
		t.Parallel()
		block := newPlan(fitcoach.IntentNutrition, 1, content)
		updated, _ := block.Update(tea.KeyMsg{})
		assert.Contains(t, updated.View(80), "▶")
	})

	t.Run("preview is truncated to width", func(t *testing.T) {
		t.Parallel()
		long := "Breakfast: overnight oats with greek yogurt, berries, chia seeds and a drizzle of honey"
		view := newPlan(fitcoach.IntentNutrition, 2, long).View(30)
		lines := strings.Split(view, "\n")
		require.Len(t, lines, 2)
		assert.LessOrEqual(t, lipgloss.Width(lines[1]), 30)
		assert.Contains(t, lines[1], "…")
	})
}

func TestPlanPreview(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain first line", "Lunch: chicken\nDinner: quinoa", "Lunch: chicken"},
		{"heading markers removed", "### Meal Plan\nLunch", "Meal Plan"},
		{"leading blank lines skipped", "\n\n  **Day 1**: legs", "Day 1**: legs"},
		{"table row", "| Day | Exercise |", "Day | Exercise"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, bt.PlanPreview(tt.content))
		})
	}
}
