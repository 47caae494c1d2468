package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
}

// TestNew_RoleField verifies that every log entry contains the "role" field.
func TestNew_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "test-role")

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	assert.Equal(t, "hello", entry["message"])
}

// TestNew_ContainsTimestamp verifies that log entries contain a timestamp field.
func TestNew_ContainsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "ts-role")

	l.Info().Msg("ts check")

	entry := decodeEntry(t, &buf)
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNew_CallerFieldName verifies that the caller field is named "func".
func TestNew_CallerFieldName(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "caller-role")
	assert.Equal(t, "func", zerolog.CallerFieldName)

	l.Info().Msg("caller")

	entry := decodeEntry(t, &buf)
	assert.Contains(t, entry["func"], "TestNew_CallerFieldName")
}

// TestNew_DebugFilteredByDefault verifies that the default level is Info.
func TestNew_DebugFilteredByDefault(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "level-role")

	l.Debug().Msg("hidden")

	assert.Empty(t, buf.String())
}

func TestAtLevel(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantDebug bool
		wantErr   bool
	}{
		{name: "empty keeps info", level: "", wantDebug: false},
		{name: "debug", level: "debug", wantDebug: true},
		{name: "unknown level is rejected", level: "loud", wantErr: true},
		{name: "warn", level: "warn", wantDebug: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New(&buf, "lvl").AtLevel(tt.level)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			l.Debug().Msg("debug line")
			assert.Equal(t, tt.wantDebug, buf.Len() > 0)
		})
	}
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

func TestGlobal_NotNil(t *testing.T) {
	require.NotNil(t, Global())
}

// TestFromContext_NotNil verifies that FromContext never returns nil, even
// when no logger has been explicitly attached to the context.
func TestFromContext_NotNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

// TestFromContext_ReturnsAttachedLogger verifies that FromContext returns the
// logger that was previously attached to the context via zerolog.
func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()
	ctx := zl.WithContext(context.Background())

	l := FromContext(ctx)
	l.Info().Msg("from context")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "ctx-value", entry["ctx-key"])
}
