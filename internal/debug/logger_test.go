package debug

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(io.Discard)
	SetLevel("debug")

	Log("dots generated: %d", 42)
	WithFields(Fields{"feature": 3}).Debug("skipped")

	assert.True(t, Enabled())
	assert.Contains(t, buf.String(), "dots generated: 42")
	assert.Contains(t, buf.String(), "feature=3")
}

func TestLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer func() {
		SetOutput(io.Discard)
		SetLevel("debug")
	}()

	SetLevel("warn")
	Log("hidden")
	Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestDiscardDisables(t *testing.T) {
	SetOutput(io.Discard)
	assert.False(t, Enabled())
}
