package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test", zerolog.DebugLevel, &bytes.Buffer{})
	require.NotNil(t, l)
}

// TestNewLogger_RoleAndLevel verifies that the console line carries the
// role, the level and the message.
func TestNewLogger_RoleAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("libraries dangling", zerolog.DebugLevel, &buf)

	l.Warn().Msg("Found 1 folders")

	line := buf.String()
	assert.Contains(t, line, "libraries dangling")
	assert.Contains(t, line, "WRN")
	assert.Contains(t, line, "Found 1 folders")
}

// TestNewLogger_FiltersBelowLevel verifies that entries below the configured
// level are dropped.
func TestNewLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test", zerolog.WarnLevel, &buf)

	l.Info().Msg("hidden")
	l.Debug().Msg("hidden too")
	assert.Empty(t, buf.String())

	l.Error().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{in: "debug", want: zerolog.DebugLevel},
		{in: "info", want: zerolog.InfoLevel},
		{in: "warning", want: zerolog.WarnLevel},
		{in: "WARNING", want: zerolog.WarnLevel},
		{in: "error", want: zerolog.ErrorLevel},
		{in: "", want: zerolog.WarnLevel},
		{in: "trace", wantErr: true},
		{in: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
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

// TestGetChildLogger_IsIndependent verifies that the child logger is a
// distinct instance from the parent.
func TestGetChildLogger_IsIndependent(t *testing.T) {
	parent := NewLogger("parent", zerolog.InfoLevel, &bytes.Buffer{})
	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)
}

// TestWithField_AddsField verifies that WithField enriches only the child.
func TestWithField_AddsField(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("parent", zerolog.InfoLevel, &buf)

	parent.WithField("library", "user_data").Info().Msg("child")
	assert.Contains(t, buf.String(), "library=user_data")

	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, buf.String(), "library=")
}

// TestFromContext_ReturnsAttachedLogger verifies the WithContext/FromContext
// round trip.
func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ctx", zerolog.InfoLevel, &buf)
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")
	assert.Contains(t, buf.String(), "from context")
}

// TestFromContext_NotNil verifies that FromContext never returns nil, even
// when no logger has been explicitly attached to the context.
func TestFromContext_NotNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}
