package debug_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detective/internal/debug"
)

func TestDisabledLoggerIsSilent(t *testing.T) {
	var nilLogger *debug.Logger
	assert.False(t, nilLogger.IsEnabled())
	nilLogger.Printf("nothing %d", 1)
	nilLogger.Println("nothing")
	require.NoError(t, nilLogger.Close())

	disabled := debug.NewLogger(false, filepath.Join(t.TempDir(), "never.log"))
	assert.False(t, disabled.IsEnabled())
	disabled.Printf("nothing")
}

func TestWriterLogger(t *testing.T) {
	var buf bytes.Buffer
	l := debug.NewWriterLogger(&buf)

	l.Printf("entered %s", "Cozinha")
	l.Println("quit")

	assert.Equal(t, "entered Cozinha\nquit\n", buf.String())
}

func TestFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	l := debug.NewLogger(true, path)
	require.True(t, l.IsEnabled())

	l.Printf("session %s started", "abc")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "=== DEBUG MODE ENABLED ===")
	assert.Contains(t, string(data), "session abc started")
}
