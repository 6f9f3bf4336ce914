package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/pymk-dev/pymk/internal/adapters/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	l, ok := logger.New().(*logger.Logger)
	require.True(t, ok)

	var buf bytes.Buffer
	l.SetOutput(&buf)
	return l, &buf
}

func TestLogger_Info(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.Info("created virtual environment")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "created virtual environment")
}

func TestLogger_Warn(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.Warn("no requirements.txt found")

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "no requirements.txt found")
}

func TestLogger_Error(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.Error(errors.New("command failed"))

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "command failed")
}
