package bubbletea

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/fitcoach"
	"github.com/fwojciec/fitcoach/goldmark"
	"github.com/mattn/go-runewidth"
)

var _ MessageBlock = (*PlanBlock)(nil)

// PlanBlock renders an archived plan on the dashboard. Collapsed, it shows
// the title and a one-line preview; expanded, the full plan as markdown.
type PlanBlock struct {
	intent    fitcoach.Intent
	number    int
	content   string
	collapsed bool
	focused   bool
	theme     fitcoach.Theme
	styles    Styles
}

// NewPlanBlock creates a collapsed PlanBlock. Number is the plan's 1-based
// position in its archive.
func NewPlanBlock(intent fitcoach.Intent, number int, content string, theme fitcoach.Theme, styles Styles) *PlanBlock {
	return &PlanBlock{
		intent:    intent,
		number:    number,
		content:   content,
		collapsed: true,
		theme:     theme,
		styles:    styles,
	}
}

// Title returns "Workout Plan N" or "Meal Plan N".
func (b *PlanBlock) Title() string {
	if b.intent == fitcoach.IntentWorkout {
		return fmt.Sprintf("Workout Plan %d", b.number)
	}
	return fmt.Sprintf("Meal Plan %d", b.number)
}

// SetFocused marks the block as the dashboard selection.
func (b *PlanBlock) SetFocused(focused bool) {
	b.focused = focused
}

func (b *PlanBlock) Update(msg tea.Msg) (MessageBlock, tea.Cmd) {
	if _, ok := msg.(ToggleMsg); ok {
		b.collapsed = !b.collapsed
	}
	return b, nil
}

func (b *PlanBlock) View(width int) string {
	indicator := "▶"
	if !b.collapsed {
		indicator = "▼"
	}
	style := b.styles.ForIntent(b.intent)
	if b.focused {
		style = style.Underline(true)
	}
	header := style.Render(indicator + " " + b.Title())

	if b.collapsed {
		preview := runewidth.Truncate(planPreview(b.content), max(width-2, 1), "…")
		return header + "\n  " + b.styles.Muted.Render(preview)
	}
	body := lipgloss.NewStyle().PaddingLeft(2).Render(goldmark.Render(b.content, max(width-2, 1), b.theme))
	return header + "\n" + body
}

// planPreview returns the first non-empty line of a plan with surrounding
// markdown markers removed.
func planPreview(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.Trim(line, "#*->| \t")
		if line != "" {
			return line
		}
	}
	return ""
}
