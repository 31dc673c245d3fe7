package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer reset()

	SetVerbose(false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestDebug_WhenVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("calling backend", "op", "list_collections")

	out := buf.String()
	assert.Contains(t, out, "DBG")
	assert.Contains(t, out, "calling backend")
	assert.Contains(t, out, "op=list_collections")
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("hidden")
	Info("hidden too")

	assert.Empty(t, buf.String())
}

func TestWarn_AlwaysEmitted(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Warn("running without backend", "mode", "dev")

	assert.Contains(t, buf.String(), "WRN")
	assert.Contains(t, buf.String(), "mode=dev")
}

func TestError_IncludesCause(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	Error("serve failed", errors.New("boom"))

	assert.Contains(t, buf.String(), "ERR")
	assert.Contains(t, buf.String(), "boom")
}

func TestEnabled(t *testing.T) {
	defer reset()

	SetVerbose(false)
	assert.False(t, Enabled(slog.LevelDebug))
	assert.True(t, Enabled(slog.LevelWarn))

	SetVerbose(true)
	assert.True(t, Enabled(slog.LevelDebug))
}

func TestLogger_FollowsOutput(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	Logger().Warn("from the sdk", "session", "s1")
	assert.Contains(t, buf.String(), "from the sdk")
	assert.Contains(t, buf.String(), "s1")
}

func TestSection(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	Section("Startup")
	assert.Empty(t, buf.String())

	SetVerbose(true)
	Section("Startup")
	assert.Equal(t, "\n=== Startup ===\n", buf.String())
}
