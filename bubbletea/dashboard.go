package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/fitcoach"
)

const (
	emptyMealHint    = "No meal plans generated yet. Go to the Chat Assistant to create one!"
	emptyWorkoutHint = "No workout plans generated yet. Go to the Chat Assistant to create one!"
)

// dashboard lists the archived plans, meal plans first, each archive newest
// first.
type dashboard struct {
	meals    []*PlanBlock
	workouts []*PlanBlock
	focus    int // index into plans(); -1 when there are none
}

func newDashboard(session *fitcoach.Session, theme fitcoach.Theme, styles Styles) dashboard {
	d := dashboard{
		meals:    planBlocks(session, fitcoach.IntentNutrition, theme, styles),
		workouts: planBlocks(session, fitcoach.IntentWorkout, theme, styles),
		focus:    -1,
	}
	if len(d.plans()) > 0 {
		d = d.setFocus(0)
	}
	return d
}

func planBlocks(session *fitcoach.Session, intent fitcoach.Intent, theme fitcoach.Theme, styles Styles) []*PlanBlock {
	plans := session.Plans(intent)
	blocks := make([]*PlanBlock, len(plans))
	for i, content := range plans {
		blocks[i] = NewPlanBlock(intent, len(plans)-i, content, theme, styles)
	}
	return blocks
}

func (d dashboard) plans() []*PlanBlock {
	all := make([]*PlanBlock, 0, len(d.meals)+len(d.workouts))
	all = append(all, d.meals...)
	return append(all, d.workouts...)
}

func (d dashboard) setFocus(i int) dashboard {
	plans := d.plans()
	if len(plans) == 0 {
		d.focus = -1
		return d
	}
	i = (i%len(plans) + len(plans)) % len(plans)
	for j, p := range plans {
		p.SetFocused(j == i)
	}
	d.focus = i
	return d
}

func (d dashboard) toggleFocused() {
	plans := d.plans()
	if d.focus >= 0 && d.focus < len(plans) {
		plans[d.focus].Update(ToggleMsg{})
	}
}

func (d dashboard) view(p fitcoach.Profile, width int, styles Styles) string {
	wrap := lipgloss.NewStyle().Width(width)
	var b strings.Builder

	b.WriteString(styles.Accent.Render("Dashboard"))
	b.WriteString("\n")
	b.WriteString(wrap.Render(fmt.Sprintf("Name: %s · Age: %d · Sex: %s · Goal: %s", p.Name, p.Age, p.Sex, p.Goal)))
	b.WriteString("\n\n")

	writeSection(&b, "My Generated Meal Plans", d.meals, emptyMealHint, width, styles)
	b.WriteString("\n")
	writeSection(&b, "My Generated Workout Plans", d.workouts, emptyWorkoutHint, width, styles)

	return strings.TrimRight(b.String(), "\n")
}

func writeSection(b *strings.Builder, title string, blocks []*PlanBlock, hint string, width int, styles Styles) {
	b.WriteString(styles.Accent.Render(title))
	b.WriteString("\n")
	if len(blocks) == 0 {
		b.WriteString(styles.Muted.Render(lipgloss.NewStyle().Width(width).Render(hint)))
		b.WriteString("\n")
		return
	}
	for _, block := range blocks {
		b.WriteString(block.View(width))
		b.WriteString("\n")
	}
}
