// Package log provides structured logging for the dataset formatting
// pipeline.
//
// The package defines a minimal, slog-compatible Logger interface so the
// backend can be swapped without touching call sites. Two backends ship with
// the module: a JSON slog handler that extracts cockroachdb/errors stack
// traces into a dedicated attribute, and a zerolog-backed logger for callers
// already standardized on zerolog.
//
// Example usage:
//
//	logger := log.GetLoggerWithName("formatters.volatility").With(
//	    log.FormatterKey, "VolatilityFormatter",
//	)
//	logger.Info("calibrating scalers",
//	    log.OperationKey, log.OperationSetScalers,
//	    log.RowsKey, 12000,
//	)
package log

import (
	"context"
	"sync"
)

// Logger is a structured logging interface compatible with Go's log/slog.
// Fields are alternating key/value pairs, as in slog.
type Logger interface {
	// Debug logs detailed diagnostic information.
	Debug(msg string, fields ...any)

	// Info logs general operational information.
	Info(msg string, fields ...any)

	// Warn logs conditions that deserve attention but do not stop the run.
	Warn(msg string, fields ...any)

	// Error logs error conditions. When a field value is an error carrying a
	// stack trace, backends may extract it into a stacktrace attribute.
	Error(msg string, fields ...any)

	// With returns a new Logger that includes the given fields in every
	// subsequent record.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level,
	// so callers can skip expensive attribute construction.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level. Values match slog.Level.
type Level int

// Standard logging levels.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider creates and configures loggers. Swapping the provider is how
// tests and embedding applications redirect the module's log output.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger tagged with a component name.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum level for loggers created by this provider.
	SetLevel(level Level)
}

var (
	providerMu sync.RWMutex
	provider   LoggerProvider = newSlogProvider()
)

// SetProvider replaces the global logger provider.
func SetProvider(p LoggerProvider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	provider = p
}

// GetLogger returns the default logger from the current provider.
func GetLogger() Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return provider.GetLogger()
}

// GetLoggerWithName returns a component-tagged logger from the current
// provider.
func GetLoggerWithName(name string) Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return provider.GetLoggerWithName(name)
}

// SetLevel sets the minimum level on the current provider.
func SetLevel(level Level) {
	providerMu.RLock()
	defer providerMu.RUnlock()
	provider.SetLevel(level)
}
