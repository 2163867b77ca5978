package bubbletea

import tea "github.com/charmbracelet/bubbletea"

// MessageBlock is a renderable element of a page.
// Unlike tea.Model, View takes a width parameter so the root model
// controls layout and blocks are testable in isolation.
type MessageBlock interface {
	Update(tea.Msg) (MessageBlock, tea.Cmd)
	View(width int) string
}

// ToggleMsg tells a collapsible block to toggle its collapsed state.
// Sent by the root model when the user presses Enter on a focused plan.
type ToggleMsg struct{}
