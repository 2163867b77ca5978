// Package bubbletea provides a Bubble Tea TUI for the fitness coach: a chat
// page for conversation turns and a dashboard page listing archived plans.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/fitcoach"
)

// AgentFunc runs one conversation turn for text. The onEvent callback is
// called for each turn event. The function blocks until the turn completes
// or the context is cancelled. It owns session for the duration of the call.
type AgentFunc func(ctx context.Context, session *fitcoach.Session, text string, onEvent func(fitcoach.Event)) error

// Run creates and runs the Bubble Tea TUI program. It blocks until the program
// exits. When ctx is cancelled the program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// EventMsg wraps a turn event for delivery to the Bubble Tea model.
type EventMsg struct {
	Event fitcoach.Event
}

// AgentDoneMsg signals that the turn has completed.
type AgentDoneMsg struct {
	Err error
}
