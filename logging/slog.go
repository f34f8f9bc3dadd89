package logging

import (
	"context"
	"log/slog"
)

// LevelTrace is the slog level the [SlogLogger] uses for trace messages, as slog has no trace level of its own.
const LevelTrace = slog.LevelDebug - 4

// SlogLogger is a logger that delegates to a [slog.Logger].
//
// The level filtering is up to the slog handler.
// Errors passed to Warn and Error are attached as the "error" attribute.
type SlogLogger struct {
	l *slog.Logger
}

// NewSlogLogger wraps the provided slog logger.
// If it is nil, [slog.Default] is used.
func NewSlogLogger(l *slog.Logger) Logger {
	if l == nil {
		l = slog.Default()
	}
	return &SlogLogger{l: l}
}

func (sl *SlogLogger) Trace(message string) {
	sl.l.Log(context.Background(), LevelTrace, message)
}

func (sl *SlogLogger) Debug(message string) {
	sl.l.Debug(message)
}

func (sl *SlogLogger) Info(message string) {
	sl.l.Info(message)
}

func (sl *SlogLogger) Warn(message string, errs ...error) {
	sl.l.Warn(message, errorAttrs(errs)...)
}

func (sl *SlogLogger) Error(message string, errs ...error) {
	sl.l.Error(message, errorAttrs(errs)...)
}

// Close does nothing: the slog handler is owned by the caller.
func (sl *SlogLogger) Close() error {
	return nil
}

func errorAttrs(errs []error) []any {
	attrs := make([]any, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			// formatted by the handler, and only if the record is enabled
			attrs = append(attrs, slog.Any("error", err))
		}
	}
	return attrs
}
