package logger

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TestParseLogLevel verifies mapping from strings to levels and the unknown fallback.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":  zapcore.DebugLevel,
		" INFO ": zapcore.InfoLevel,
		"warn":   zapcore.WarnLevel,
		"error":  zapcore.ErrorLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok, s)
		require.Equal(t, lvl, got)
	}

	got, ok := ParseLogLevel("loud")
	require.False(t, ok)
	require.Equal(t, zapcore.InfoLevel, got)
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, zap.NewAtomicLevelAt(zapcore.DebugLevel))

	ctx := ToContext(context.Background(), l)
	ctx = WithKV(ctx, "session", "abc")
	InfoKV(ctx, "lap recorded", "lap", 1)
	DebugKV(ctx, "tick")

	out := buf.String()
	require.Contains(t, out, "lap recorded")
	require.Contains(t, out, `"session": "abc"`)
	require.Contains(t, out, "tick")
}

func TestLevelFiltersEntries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ToContext(context.Background(), New(&buf, zap.NewAtomicLevelAt(zapcore.WarnLevel)))

	InfoKV(ctx, "hidden")
	WarnKV(ctx, "shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestFromContextFallsBackToGlobal(t *testing.T) {
	t.Parallel()

	require.Same(t, Logger(), FromContext(context.Background()))
}

func TestNewFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "lapwatch.log")
	l, closeFn, err := NewFile(path, zapcore.InfoLevel)
	require.NoError(t, err)

	l.Infow("started", "title", "Stopwatch")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "started")
}

func TestNewFileEmptyPathIsNop(t *testing.T) {
	t.Parallel()

	l, closeFn, err := NewFile("", zapcore.InfoLevel)
	require.NoError(t, err)
	require.NotNil(t, l)
	require.NoError(t, closeFn())
}
