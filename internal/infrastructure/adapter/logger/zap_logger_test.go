package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/payment-console/internal/domain/port/core"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := strings.TrimSpace(string(data))
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}

func TestZapLoggerWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	l, err := NewZapLogger(Options{Level: "debug", Output: path, Format: "json"})
	require.NoError(t, err)

	l.Info("Payment processed", map[string]any{"payment_id": "pay-1", "amount": "2000.00"})
	require.NoError(t, l.Flush())

	lines := readLines(t, path)
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "Payment processed", entry["message"])
	assert.Equal(t, "pay-1", entry["payment_id"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "timestamp")
}

func TestZapLoggerLevels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	l, err := NewZapLogger(Options{Level: "warn", Output: path, Format: "json"})
	require.NoError(t, err)
	assert.Equal(t, core.LogLevelWarn, l.GetLevel())

	l.Debug("hidden debug", nil)
	l.Info("hidden info", nil)
	l.Warn("shown warn", nil)

	l.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, l.GetLevel())
	l.Debug("shown debug", nil)

	l.SetLevel(core.LogLevelError)
	l.Warn("hidden warn", nil)
	l.Error("shown error", map[string]any{"error": "boom"})
	require.NoError(t, l.Flush())

	lines := readLines(t, path)
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "shown warn")
	assert.Contains(t, lines[1], "shown debug")
	assert.Contains(t, lines[2], "shown error")
}

func TestZapLoggerConsoleFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	l, err := NewZapLogger(Options{Level: "info", Output: path, Format: "console"})
	require.NoError(t, err)

	l.Info("User registered", map[string]any{"phone": "9999999999"})
	require.NoError(t, l.Flush())

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "INFO")
	assert.Contains(t, lines[0], "User registered")
	assert.Contains(t, lines[0], `"phone": "9999999999"`)
}

func TestNewLoggerSelection(t *testing.T) {
	l, err := New(Options{Level: "error", Output: "none"})
	require.NoError(t, err)
	assert.IsType(t, &NoopLogger{}, l)
	assert.Equal(t, core.LogLevelError, l.GetLevel())
	assert.NoError(t, l.Flush())

	l, err = New(Options{Output: filepath.Join(t.TempDir(), "app.log")})
	require.NoError(t, err)
	assert.IsType(t, &ZapLogger{}, l)
	assert.Equal(t, core.LogLevelInfo, l.GetLevel())
}

func TestNewZapLoggerBadOutput(t *testing.T) {
	_, err := NewZapLogger(Options{Output: filepath.Join(t.TempDir(), "missing", "dir", "app.log")})
	assert.Error(t, err)
}
