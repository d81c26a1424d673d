package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutPathDiscards(t *testing.T) {
	logger, closeFn, err := New("", true)
	require.NoError(t, err)
	logger.Info("nowhere")
	assert.NoError(t, closeFn())
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "focus.log")

	logger, closeFn, err := New(path, false)
	require.NoError(t, err)
	logger.Debug("hidden at info level")
	logger.Info("loaded saved tasks", "count", 3)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "loaded saved tasks")
	assert.Contains(t, string(data), "count=3")
	assert.NotContains(t, string(data), "hidden at info level")
}

func TestNewDebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "focus.log")

	logger, closeFn, err := New(path, true)
	require.NoError(t, err)
	logger.Debug("dispatched command", "type", "ADD_TASK")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "type=ADD_TASK")
}
