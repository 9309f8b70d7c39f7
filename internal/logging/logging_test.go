package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogs routes the global logger into a buffer for the test.
func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	var buf bytes.Buffer
	Init(Config{Level: level, JSON: true, Output: &buf})
	t.Cleanup(func() { Init(DefaultConfig()) })
	return &buf
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, slog.LevelWarn, cfg.Level)
	assert.False(t, cfg.JSON)
}

func TestDebugConfig(t *testing.T) {
	cfg := DebugConfig()
	assert.Equal(t, slog.LevelDebug, cfg.Level)
	assert.True(t, cfg.JSON)
	assert.True(t, cfg.AddSource)
}

func TestInit(t *testing.T) {
	t.Run("debug_flag_follows_level", func(t *testing.T) {
		captureLogs(t, slog.LevelDebug)
		assert.True(t, Debug)

		captureLogs(t, slog.LevelInfo)
		assert.False(t, Debug)
	})

	t.Run("nil_output_uses_stderr", func(t *testing.T) {
		Init(Config{Level: slog.LevelInfo})
		t.Cleanup(func() { Init(DefaultConfig()) })
		assert.NotNil(t, Logger())
	})
}

func TestLevelFiltering(t *testing.T) {
	buf := captureLogs(t, slog.LevelWarn)

	DebugLog("hidden")
	assert.Empty(t, buf.String())

	Warn("shown", KeySetting, "session-timeout")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), `"setting":"session-timeout"`)
}

func TestLoggingFunctions(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)

	tests := []struct {
		name string
		log  func(string, ...any)
	}{
		{"debug", DebugLog},
		{"warn", Warn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.log(tt.name+" message", KeyUnit, "hours")
			assert.Contains(t, buf.String(), tt.name+" message")
			assert.Contains(t, buf.String(), `"unit":"hours"`)
		})
	}
}

func TestRequestContext(t *testing.T) {
	ctx := NewRequestContext(context.Background())
	id := RequestIDFromContext(ctx)
	assert.Len(t, id, 8)

	other := RequestIDFromContext(NewRequestContext(nil))
	assert.NotEqual(t, id, other)

	assert.Equal(t, "", RequestIDFromContext(context.Background()))
	assert.Equal(t, "abc", RequestIDFromContext(WithRequestID(context.Background(), "abc")))
}

func TestContextLogging(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)
	ctx := WithRequestID(context.Background(), "req-1")

	DebugContext(ctx, "debug with ctx", KeyDuration, int64(7200000))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-1", entry[KeyRequestID])
	assert.Equal(t, float64(7200000), entry[KeyDuration])
}
