package bubbletea

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var _ MessageBlock = (*UserMessageBlock)(nil)

const userPrompt = "> "

// UserMessageBlock renders something the user typed. Wrapped lines are
// indented under the text so the prompt marker stays alone in its column.
type UserMessageBlock struct {
	text   string
	styles Styles
}

func NewUserMessageBlock(text string, styles Styles) *UserMessageBlock {
	return &UserMessageBlock{text: text, styles: styles}
}

func (b *UserMessageBlock) Update(tea.Msg) (MessageBlock, tea.Cmd) {
	return b, nil
}

func (b *UserMessageBlock) View(width int) string {
	textWidth := max(width-len(userPrompt), 1)
	lines := strings.Split(lipgloss.NewStyle().Width(textWidth).Render(b.text), "\n")
	pad := strings.Repeat(" ", len(userPrompt))
	for i := range lines {
		if i == 0 {
			lines[i] = b.styles.UserMsg.Render(userPrompt) + lines[i]
		} else {
			lines[i] = pad + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
