package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel(" error "))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn", nil)

	log.Info("skipped %d", 1)
	log.Warn("room=%d occupancy=%d", 101, 30)
	log.Error("boom")

	out := buf.String()
	assert.NotContains(t, out, "skipped")
	assert.Contains(t, out, "[WARN] room=101 occupancy=30")
	assert.Contains(t, out, "[ERROR] boom")
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	log, err := New(path, "info")
	require.NoError(t, err)
	log.Info("hello %s", "file")
	log.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[INFO] hello file")
}
