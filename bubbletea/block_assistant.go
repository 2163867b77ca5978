package bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/fitcoach"
	"github.com/fwojciec/fitcoach/goldmark"
)

var _ MessageBlock = (*AssistantTextBlock)(nil)

// AssistantTextBlock renders a model reply with markdown formatting. The
// rendered output is cached per width.
type AssistantTextBlock struct {
	content string
	theme   fitcoach.Theme
	byWidth map[int]string
}

// NewAssistantTextBlock creates a block for a complete assistant reply.
func NewAssistantTextBlock(content string, theme fitcoach.Theme) *AssistantTextBlock {
	return &AssistantTextBlock{
		content: content,
		theme:   theme,
		byWidth: make(map[int]string),
	}
}

func (b *AssistantTextBlock) Update(msg tea.Msg) (MessageBlock, tea.Cmd) {
	return b, nil
}

func (b *AssistantTextBlock) View(width int) string {
	if width <= 0 {
		return ""
	}
	if cached, ok := b.byWidth[width]; ok {
		return cached
	}
	rendered := goldmark.Render(b.content, width, b.theme)
	b.byWidth[width] = rendered
	return rendered
}
