package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

const (
	// ErrAttrKey is the attribute key under which callers attach error values.
	ErrAttrKey = "error"
	// StacktraceAttrKey is the attribute key the handler uses for extracted
	// stack traces.
	StacktraceAttrKey = "stacktrace"
	// ComponentAttrKey tags records with the originating package or type.
	ComponentAttrKey = "component"
)

// SetupLogger installs a JSON slog logger wrapped by the stacktrace handler
// as both the slog default and this package's provider.
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     slog.Level(ToLogLevel(loglevel)),
	}
	handler := slog.NewJSONHandler(os.Stdout, &ops)
	errFmtHandler := WrapByErrFmtHandler(handler)
	slog.SetDefault(slog.New(errFmtHandler))
	SetProvider(newSlogProvider())
}

// ToLogLevel parses a level name. Unknown names are a programming error.
func ToLogLevel(level string) Level {
	switch level {
	case "info":
		return LevelInfo
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

// slogProvider is the default LoggerProvider, backed by the process-wide
// slog default logger.
type slogProvider struct {
	mu    sync.RWMutex
	level Level
}

func newSlogProvider() *slogProvider {
	return &slogProvider{level: LevelInfo}
}

func (p *slogProvider) GetLogger() Logger {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return &slogLogger{logger: slog.Default(), level: p.level}
}

func (p *slogProvider) GetLoggerWithName(name string) Logger {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return &slogLogger{
		logger: slog.Default().With(ComponentAttrKey, name),
		level:  p.level,
	}
}

func (p *slogProvider) SetLevel(level Level) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = level
}

// slogLogger adapts *slog.Logger to the Logger interface.
type slogLogger struct {
	logger *slog.Logger
	level  Level
}

func (l *slogLogger) Debug(msg string, fields ...any) {
	if l.level <= LevelDebug {
		l.logger.Debug(msg, fields...)
	}
}

func (l *slogLogger) Info(msg string, fields ...any) {
	if l.level <= LevelInfo {
		l.logger.Info(msg, fields...)
	}
}

func (l *slogLogger) Warn(msg string, fields ...any) {
	if l.level <= LevelWarn {
		l.logger.Warn(msg, fields...)
	}
}

func (l *slogLogger) Error(msg string, fields ...any) {
	if l.level <= LevelError {
		l.logger.Error(msg, fields...)
	}
}

func (l *slogLogger) With(fields ...any) Logger {
	return &slogLogger{logger: l.logger.With(fields...), level: l.level}
}

func (l *slogLogger) Enabled(ctx context.Context, level Level) bool {
	if level < l.level {
		return false
	}
	return l.logger.Enabled(ctx, slog.Level(level))
}
