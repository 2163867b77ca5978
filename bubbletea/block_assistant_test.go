package bubbletea_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/fitcoach"
	bt "github.com/fwojciec/fitcoach/bubbletea"
	"github.com/fwojciec/fitcoach/goldmark"
	"github.com/stretchr/testify/assert"
)

func TestAssistantTextBlock_View(t *testing.T) {
	t.Parallel()

	t.Run("renders markdown", func(t *testing.T) {
		t.Parallel()
		block := bt.NewAssistantTextBlock("## Day 1\n\n- **Squat** 3x10", fitcoach.DefaultTheme())
		view := block.View(80)
		assert.Contains(t, view, "Day 1")
		assert.Contains(t, view, "Squat")
		assert.NotContains(t, view, "##")
		assert.NotContains(t, view, "**")
	})

	t.Run("matches goldmark output", func(t *testing.T) {
		t.Parallel()
		theme := fitcoach.DefaultTheme()
		block := bt.NewAssistantTextBlock("Lunch: grilled chicken", theme)
		assert.Equal(t, goldmark.Render("Lunch: grilled chicken", 80, theme), block.View(80))
	})

	t.Run("wraps paragraphs to width", func(t *testing.T) {
		t.Parallel()
		block := bt.NewAssistantTextBlock("short words that keep going and going beyond thirty columns easily", fitcoach.DefaultTheme())
		view := block.View(30)
		assert.Contains(t, view, "easily")
		assert.Greater(t, strings.Count(view, "\n"), 0)
	})

	t.Run("same width renders identically", func(t *testing.T) {
		t.Parallel()
		block := bt.NewAssistantTextBlock("Stay consistent!", fitcoach.DefaultTheme())
		assert.Equal(t, block.View(40), block.View(40))
	})

	t.Run("width change re-renders", func(t *testing.T) {
		t.Parallel()
		block := bt.NewAssistantTextBlock("word1 word2 word3 word4 word5 word6", fitcoach.DefaultTheme())
		narrow := block.View(12)
		wide := block.View(80)
		assert.NotEqual(t, strings.Count(narrow, "\n"), strings.Count(wide, "\n"))
	})

	t.Run("unclosed fenced code block renders safely", func(t *testing.T) {
		t.Parallel()
		block := bt.NewAssistantTextBlock("```\nsquat 3x10", fitcoach.DefaultTheme())
		assert.Contains(t, block.View(80), "squat 3x10")
	})

	t.Run("update returns self with no command", func(t *testing.T) {
		t.Parallel()
		block := bt.NewAssistantTextBlock("hello", fitcoach.DefaultTheme())
		updated, cmd := block.Update(tea.KeyMsg{})
		assert.Equal(t, block, updated)
		assert.Nil(t, cmd)
	})

	t.Run("zero width renders nothing", func(t *testing.T) {
		t.Parallel()
		block := bt.NewAssistantTextBlock("hello", fitcoach.DefaultTheme())
		assert.Equal(t, "", block.View(0))
	})
}
