package bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var _ MessageBlock = (*WarningBlock)(nil)

// WarningBlock renders an assistant message that reports a failed turn.
type WarningBlock struct {
	text   string
	styles Styles
}

// NewWarningBlock creates a WarningBlock.
func NewWarningBlock(text string, styles Styles) *WarningBlock {
	return &WarningBlock{text: text, styles: styles}
}

func (b *WarningBlock) Update(msg tea.Msg) (MessageBlock, tea.Cmd) {
	return b, nil
}

func (b *WarningBlock) View(width int) string {
	return b.styles.Warning.Render(lipgloss.NewStyle().Width(width).Render(b.text))
}
