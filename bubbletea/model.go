package bubbletea

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/fitcoach"
)

var _ tea.Model = Model{}

// Page identifies which page the model displays.
type Page int

const (
	PageChat Page = iota
	PageDashboard
)

const (
	workoutToast = "Workout plan saved to dashboard!"
	mealToast    = "Meal plan saved to dashboard!"
)

// Model is the Bubble Tea model for the fitness coach TUI.
type Model struct {
	// Input is the text input component. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable page area. Exported for test access.
	Viewport viewport.Model

	run     AgentFunc
	session *fitcoach.Session
	profile fitcoach.Profile
	theme   fitcoach.Theme
	styles  Styles

	page      Page
	blocks    []MessageBlock
	dashboard dashboard
	toast     string

	running bool
	cancel  context.CancelFunc
	eventCh chan fitcoach.Event
	doneCh  chan error
	err     error
	ready   bool
}

// New creates a new TUI Model. The session must be idle; the model reads it
// only between turns.
func New(run AgentFunc, session *fitcoach.Session, profile fitcoach.Profile, theme fitcoach.Theme) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask for a workout or meal plan..."
	ti.Prompt = ""
	ti.Focus()
	ti.CharLimit = 0

	return Model{
		Input:   ti,
		run:     run,
		session: session,
		profile: profile,
		theme:   theme,
		styles:  NewStyles(theme),
	}
}

// Running returns whether a turn is in flight.
func (m Model) Running() bool { return m.running }

// Err returns the last error, if any.
func (m Model) Err() error { return m.err }

// Page returns the displayed page.
func (m Model) Page() Page { return m.page }

// Toast returns the last plan-saved notice, or "".
func (m Model) Toast() string { return m.toast }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case EventMsg:
		m = m.processEvent(msg.Event)
		m = m.refresh()
		if m.eventCh != nil {
			return m, listenForEvent(m.eventCh, m.doneCh)
		}
		return m, nil

	case AgentDoneMsg:
		m.running = false
		m.cancel = nil
		m.eventCh = nil
		m.doneCh = nil
		if msg.Err != nil && !errors.Is(msg.Err, context.Canceled) {
			m.err = msg.Err
		}
		// The turn is over, so the session is safe to read again.
		m = m.renderSession()
		m = m.refresh()
		cmds = append(cmds, m.Input.Focus())
		return m, tea.Batch(cmds...)
	}

	// Viewport always receives messages for scrolling (keyboard and mouse).
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)

	if !m.running && m.page == PageChat {
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder

	b.WriteString(m.Viewport.View())
	b.WriteString("\n")

	b.WriteString(m.statusLine())
	b.WriteString("\n")

	if m.page == PageChat {
		b.WriteString(m.Input.View())
	}

	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	inputH := 1
	statusHeight := 1
	borderHeight := 2 // newlines between sections
	vpHeight := msg.Height - inputH - statusHeight - borderHeight

	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m = m.renderSession()
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	m = m.refresh()

	m.Input.Width = msg.Width
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.running {
			if m.cancel != nil {
				m.cancel()
			}
			return m, nil
		}
		return m, tea.Quit

	case tea.KeyTab:
		if m.page == PageChat {
			m.page = PageDashboard
		} else {
			m.page = PageChat
		}
		m = m.refresh()
		if m.page == PageDashboard {
			m.Viewport.GotoTop()
		}
		return m, nil
	}

	if m.page == PageDashboard {
		return m.handleDashboardKey(msg)
	}

	if msg.Type == tea.KeyEnter {
		if m.running {
			return m, nil
		}
		text := strings.TrimSpace(m.Input.Value())
		if text == "" {
			return m, nil
		}
		return m.submitInput(text)
	}

	// When idle, pass keys to both input (for typing) and viewport
	// (for scrolling). Only forward non-character keys to viewport to avoid
	// conflicts (e.g. 'j'/'k' are viewport scroll AND text characters).
	if !m.running {
		var cmd tea.Cmd
		var cmds []tea.Cmd

		if msg.Type != tea.KeyRunes {
			m.Viewport, cmd = m.Viewport.Update(msg)
			cmds = append(cmds, cmd)
		}

		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)

		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp, tea.KeyShiftTab:
		m.dashboard = m.dashboard.setFocus(m.dashboard.focus - 1)
		m = m.refresh()
		return m, nil
	case tea.KeyDown:
		m.dashboard = m.dashboard.setFocus(m.dashboard.focus + 1)
		m = m.refresh()
		return m, nil
	case tea.KeyEnter:
		m.dashboard.toggleFocused()
		m = m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m Model) submitInput(text string) (tea.Model, tea.Cmd) {
	m.Input.SetValue("")
	m.err = nil
	m.toast = ""

	m.blocks = append(m.blocks, NewUserMessageBlock(text, m.styles))
	m = m.refresh()

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.eventCh = make(chan fitcoach.Event, 16)
	m.doneCh = make(chan error, 1)
	m.running = true

	m.Input.Blur()

	return m, tea.Batch(
		startAgent(m.run, ctx, m.session, text, m.eventCh, m.doneCh),
		listenForEvent(m.eventCh, m.doneCh),
	)
}

// renderSession rebuilds the chat blocks and the dashboard from the session.
// It must only be called while no turn is in flight.
func (m Model) renderSession() Model {
	m.blocks = m.blocks[:0:0]
	for _, msg := range m.session.Transcript() {
		switch {
		case msg.Role == fitcoach.RoleUser:
			m.blocks = append(m.blocks, NewUserMessageBlock(msg.Content, m.styles))
		case strings.HasPrefix(msg.Content, fitcoach.WarningMarker):
			m.blocks = append(m.blocks, NewWarningBlock(msg.Content, m.styles))
		default:
			m.blocks = append(m.blocks, NewAssistantTextBlock(msg.Content, m.theme))
		}
	}
	m.dashboard = newDashboard(m.session, m.theme, m.styles)
	return m
}

// refresh re-renders the current page into the viewport.
func (m Model) refresh() Model {
	if !m.ready {
		return m
	}
	if m.page == PageDashboard {
		m.Viewport.SetContent(m.dashboard.view(m.profile, m.Viewport.Width, m.styles))
		return m
	}
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()
	return m
}

func (m Model) renderContent() string {
	if len(m.blocks) == 0 {
		greeting := fmt.Sprintf("Hi %s! Ask for a workout plan, a meal plan or any fitness question.", m.profile.Name)
		return m.styles.Muted.Render(lipgloss.NewStyle().Width(m.Viewport.Width).Render(greeting))
	}
	var b strings.Builder
	for i, block := range m.blocks {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(block.View(m.Viewport.Width))
	}
	return b.String()
}

// processEvent renders turn events as they arrive.
func (m Model) processEvent(evt fitcoach.Event) Model {
	switch e := evt.(type) {
	case fitcoach.EventReply:
		if e.Failed {
			m.blocks = append(m.blocks, NewWarningBlock(e.Content, m.styles))
		} else {
			m.blocks = append(m.blocks, NewAssistantTextBlock(e.Content, m.theme))
		}
	case fitcoach.EventPlanArchived:
		switch e.Intent {
		case fitcoach.IntentWorkout:
			m.toast = workoutToast
		case fitcoach.IntentNutrition:
			m.toast = mealToast
		}
	}
	return m
}

func (m Model) statusLine() string {
	if m.err != nil {
		return m.styles.Warning.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if m.running {
		return m.styles.Muted.Render("Generating...")
	}
	if m.toast != "" {
		return m.styles.Success.Render(m.toast)
	}
	if m.page == PageDashboard {
		return m.styles.Muted.Render("Up/Down to select, Enter to expand, Tab for chat, Ctrl+C to quit")
	}
	return m.styles.Muted.Render("Enter to send, Tab for dashboard, Ctrl+C to quit")
}

// startAgent runs the turn in a goroutine and signals completion.
func startAgent(run AgentFunc, ctx context.Context, session *fitcoach.Session, text string, eventCh chan<- fitcoach.Event, doneCh chan<- error) tea.Cmd {
	return func() tea.Msg {
		err := run(ctx, session, text, func(e fitcoach.Event) {
			select {
			case eventCh <- e:
			case <-ctx.Done():
			}
		})
		close(eventCh)
		doneCh <- err
		return nil
	}
}

// listenForEvent waits for the next event from the channel.
// When the channel closes, it reads the error from doneCh and returns AgentDoneMsg.
func listenForEvent(ch <-chan fitcoach.Event, doneCh <-chan error) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-ch
		if !ok {
			err := <-doneCh
			return AgentDoneMsg{Err: err}
		}
		return EventMsg{Event: evt}
	}
}
