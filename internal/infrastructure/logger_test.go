package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uplcompare/internal/config"
)

// resetLogger restores the global logger state and the slog default after a test
func resetLogger(t *testing.T) {
	t.Helper()
	previous := slog.Default()
	ResetLoggerForTesting()
	t.Cleanup(func() {
		ResetLoggerForTesting()
		slog.SetDefault(previous)
	})
}

func decodeLines(t *testing.T, data []byte) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "log line is not JSON: %s", line)
		entries = append(entries, entry)
	}
	return entries
}

func TestInitializeLoggerWritesJSONFile(t *testing.T) {
	resetLogger(t)

	logFile := filepath.Join(t.TempDir(), "logs", "test.log")
	logger, err := InitializeLogger(config.LoggingConfig{
		Level:    "info",
		Format:   "json",
		Output:   "file",
		FilePath: logFile,
	})
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.Same(t, logger, slog.Default())

	logger.Info("test message", slog.String("key", "value"))
	require.NoError(t, CloseLogFile())

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)

	entries := decodeLines(t, content)
	require.Len(t, entries, 1)
	assert.Equal(t, "test message", entries[0]["msg"])
	assert.Equal(t, "value", entries[0]["key"])
	assert.Equal(t, "INFO", entries[0]["level"])
}

func TestInitializeLoggerOnce(t *testing.T) {
	resetLogger(t)

	first, err := InitializeLogger(config.LoggingConfig{Level: config.DefaultLogLevel, Output: "console"})
	require.NoError(t, err)

	second, err := InitializeLogger(config.LoggingConfig{Level: "debug", Output: "console"})
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestInitializeLoggerBadPath(t *testing.T) {
	resetLogger(t)

	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := InitializeLogger(config.LoggingConfig{
		Output:   "file",
		FilePath: filepath.Join(blocker, "app.log"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open log file")
}

func TestTraceIDInjection(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(config.LoggingConfig{Level: "info"}, &buf)

	ctx := WithTraceID(context.Background(), "test-trace-123")
	logger.InfoContext(ctx, "with trace")
	logger.Info("without trace")
	logger.With(slog.String("component", "exporter")).WithGroup("req").InfoContext(ctx, "grouped", slog.Int("n", 1))

	entries := decodeLines(t, buf.Bytes())
	require.Len(t, entries, 3)

	assert.Equal(t, "test-trace-123", entries[0]["trace_id"])
	assert.NotContains(t, entries[1], "trace_id")
	assert.Equal(t, "exporter", entries[2]["component"])
	group, ok := entries[2]["req"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "test-trace-123", group["trace_id"])
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLogLevel(tt.input))
		})
	}
}

func TestNewLoggerLevelAndSource(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(config.LoggingConfig{Level: "warn", Development: true}, &buf)

	logger.Info("dropped")
	logger.Warn("kept")

	entries := decodeLines(t, buf.Bytes())
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0]["msg"])
	assert.Contains(t, entries[0], slog.SourceKey)
}

func TestContextHelpers(t *testing.T) {
	resetLogger(t)

	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx))

	ctx = EnsureTraceID(ctx)
	id := GetTraceID(ctx)
	assert.Len(t, id, 36)
	assert.Equal(t, id, GetTraceID(EnsureTraceID(ctx)), "existing trace id is kept")
	assert.NotEqual(t, GenerateTraceID(), GenerateTraceID())

	var buf bytes.Buffer
	base := NewLogger(config.LoggingConfig{Level: "info"}, &buf)
	WithError(WithComponent(base, "exporter"), errors.New("sheet missing")).InfoContext(ctx, "failed")
	WithError(base, nil).Info("clean")

	entries := decodeLines(t, buf.Bytes())
	require.Len(t, entries, 2)
	assert.Equal(t, "exporter", entries[0]["component"])
	assert.Equal(t, "sheet missing", entries[0]["error"])
	assert.Equal(t, id, entries[0]["trace_id"])
	assert.NotContains(t, entries[1], "error")
}
