package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("debug"))
	assert.Equal(t, WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, InfoLevel, ParseLevel(""))
	assert.Equal(t, InfoLevel, ParseLevel("verbose"))
}

func TestLogLevel_ToCharmlogLevel(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected charmlog.Level
	}{
		{DebugLevel, charmlog.DebugLevel},
		{InfoLevel, charmlog.InfoLevel},
		{WarnLevel, charmlog.WarnLevel},
		{ErrorLevel, charmlog.ErrorLevel},
		{DisabledLevel, charmlog.Level(1000)},
		{LogLevel("unknown"), charmlog.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.level.ToCharmlogLevel(), "level %s", tt.level)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Config{Level: InfoLevel, Output: &buf, JSON: true})

	l.Info("paginated", "pages", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "paginated", entry["msg"])
	assert.Equal(t, float64(3), entry["pages"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Config{Level: WarnLevel, Output: &buf})

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Config{Level: InfoLevel, Output: &buf}).With("request_id", "abc")

	l.Info("done")
	assert.True(t, strings.Contains(buf.String(), "request_id=abc"))
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Error("ignored", "err", io.EOF)
	})
}

func TestFromContext(t *testing.T) {
	t.Run("returns logger stored in context", func(t *testing.T) {
		expected := Nop()
		ctx := ContextWithLogger(context.Background(), expected)
		assert.Same(t, expected, FromContext(ctx))
	})

	t.Run("falls back when absent", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
	})

	t.Run("falls back on nil logger", func(t *testing.T) {
		ctx := ContextWithLogger(context.Background(), nil)
		assert.NotNil(t, FromContext(ctx))
	})
}
