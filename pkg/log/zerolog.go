package log

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/Thierrix/ml-project-2-armageddon/pkg/errors"
)

// ZerologProvider is a LoggerProvider backed by rs/zerolog. It is the
// backend of choice when the embedding application already emits zerolog
// output and wants the formatter's records in the same stream.
type ZerologProvider struct {
	root zerolog.Logger
}

// NewZerologProvider creates a provider writing JSON records to w.
func NewZerologProvider(w io.Writer) *ZerologProvider {
	return &ZerologProvider{root: zerolog.New(w).With().Timestamp().Logger()}
}

// GetLogger implements LoggerProvider.
func (p *ZerologProvider) GetLogger() Logger {
	return &zerologLogger{logger: p.root}
}

// GetLoggerWithName implements LoggerProvider.
func (p *ZerologProvider) GetLoggerWithName(name string) Logger {
	return &zerologLogger{logger: p.root.With().Str(ComponentAttrKey, name).Logger()}
}

// SetLevel implements LoggerProvider.
func (p *ZerologProvider) SetLevel(level Level) {
	p.root = p.root.Level(toZerologLevel(level))
}

// InstallWarningHook routes pkg/errors warnings through this provider so
// warning types carrying MarshalZerologObject are emitted structurally.
func (p *ZerologProvider) InstallWarningHook() {
	logger := p.root
	errors.SetZerologWarnFunc(func(warning error) {
		ev := logger.Warn()
		// Unwrap so stack-trace wrappers do not hide the structured fields.
		var marshaler zerolog.LogObjectMarshaler
		if errors.As(warning, &marshaler) {
			ev.EmbedObject(marshaler)
		}
		ev.Msg(warning.Error())
	})
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// zerologLogger adapts zerolog.Logger to the Logger interface.
type zerologLogger struct {
	logger zerolog.Logger
}

func (l *zerologLogger) Debug(msg string, fields ...any) {
	emit(l.logger.Debug(), msg, fields...)
}

func (l *zerologLogger) Info(msg string, fields ...any) {
	emit(l.logger.Info(), msg, fields...)
}

func (l *zerologLogger) Warn(msg string, fields ...any) {
	emit(l.logger.Warn(), msg, fields...)
}

func (l *zerologLogger) Error(msg string, fields ...any) {
	emit(l.logger.Error(), msg, fields...)
}

func (l *zerologLogger) With(fields ...any) Logger {
	ctx := l.logger.With()
	for key, value := range pairs(fields) {
		ctx = ctx.Interface(key, value)
	}
	return &zerologLogger{logger: ctx.Logger()}
}

func (l *zerologLogger) Enabled(_ context.Context, level Level) bool {
	return toZerologLevel(level) >= l.logger.GetLevel()
}

// emit applies alternating key/value fields to a zerolog event. Error values
// implementing LogObjectMarshaler are embedded structurally in addition to
// the message attribute.
func emit(ev *zerolog.Event, msg string, fields ...any) {
	for key, value := range pairs(fields) {
		if err, ok := value.(error); ok && key == ErrAttrKey {
			var marshaler zerolog.LogObjectMarshaler
			if errors.As(err, &marshaler) {
				ev = ev.EmbedObject(marshaler)
			}
			ev = ev.Str(ErrAttrKey, err.Error())
			continue
		}
		ev = ev.Interface(key, value)
	}
	ev.Msg(msg)
}

// pairs converts a slog-style variadic field list into a key/value map,
// stringifying odd keys the way slog does for malformed input.
func pairs(fields []any) map[string]any {
	out := make(map[string]any, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			key = fmt.Sprint(fields[i])
		}
		out[key] = fields[i+1]
	}
	return out
}
