package logger

import (
	"strings"

	"github.com/amirhossein-jamali/payment-console/internal/domain/port/core"
)

// NoopLogger implements the Logger interface but discards everything.
// Used by tests and when logger.output is "none".
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger creates a new no-op logger
func NewNoopLogger() core.Logger {
	return &NoopLogger{
		level: core.LogLevelInfo,
	}
}

// SetLevel sets the minimum log level to output
func (l *NoopLogger) SetLevel(level core.LogLevel) {
	l.level = level
}

// GetLevel gets the current log level
func (l *NoopLogger) GetLevel() core.LogLevel {
	return l.level
}

// Debug discards the message
func (l *NoopLogger) Debug(string, map[string]any) {}

// Info discards the message
func (l *NoopLogger) Info(string, map[string]any) {}

// Warn discards the message
func (l *NoopLogger) Warn(string, map[string]any) {}

// Error discards the message
func (l *NoopLogger) Error(string, map[string]any) {}

// Flush has nothing to write
func (l *NoopLogger) Flush() error {
	return nil
}

// New builds the logger described by opts; an output of "none" yields a NoopLogger
func New(opts Options) (core.Logger, error) {
	if strings.EqualFold(strings.TrimSpace(opts.Output), "none") {
		l := NewNoopLogger()
		l.SetLevel(core.ParseLogLevel(opts.Level))
		return l, nil
	}
	l, err := NewZapLogger(opts)
	if err != nil {
		return nil, err
	}
	return l, nil
}
