package bubbletea_test

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/fitcoach"
	bt "github.com/fwojciec/fitcoach/bubbletea"
	"github.com/stretchr/testify/require"
)

// initModel creates a model over session and sends a WindowSizeMsg to
// initialize the viewport.
func initModel(t *testing.T, run bt.AgentFunc, session *fitcoach.Session) bt.Model {
	t.Helper()
	return initModelWithSize(t, run, session, 80, 24)
}

// initModelWithSize creates a model with a custom terminal size.
func initModelWithSize(t *testing.T, run bt.AgentFunc, session *fitcoach.Session, width, height int) bt.Model {
	t.Helper()
	m := bt.New(run, session, fitcoach.DefaultProfile(), fitcoach.DefaultTheme())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// archive runs a successful turn on session without a gateway.
func archive(t *testing.T, session *fitcoach.Session, reply string) {
	t.Helper()
	_, err := session.SubmitUserTurn("request", fitcoach.DefaultProfile())
	require.NoError(t, err)
	_, err = session.ReceiveReply(reply, nil)
	require.NoError(t, err)
}

// nopAgent is a mock agent that does nothing.
func nopAgent(context.Context, *fitcoach.Session, string, func(fitcoach.Event)) error {
	return nil
}
