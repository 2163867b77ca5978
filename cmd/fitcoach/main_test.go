package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenLogger(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "fitcoach.log")
	logger, closeLog, err := openLogger(path)
	require.NoError(t, err)

	logger.Info("session started", "session_id", "abc")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"session started"`)
	assert.Contains(t, string(data), `"session_id":"abc"`)
}

func TestDefaultLogPath(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "fitcoach.log", filepath.Base(defaultLogPath()))
}
