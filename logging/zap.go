package logging

import (
	"go.uber.org/zap"
)

// ZapLogger is a logger that delegates to a [zap.Logger].
//
// Zap has no trace level, so trace messages are logged at debug level with the "trace" field set to true.
// Errors passed to Warn and Error are attached with [zap.Errors].
type ZapLogger struct {
	l *zap.Logger
}

// NewZapLogger wraps the provided zap logger.
// If it is nil, a no-op zap logger is used.
func NewZapLogger(l *zap.Logger) Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return &ZapLogger{l: l}
}

func (zl *ZapLogger) Trace(message string) {
	zl.l.Debug(message, zap.Bool("trace", true))
}

func (zl *ZapLogger) Debug(message string) {
	zl.l.Debug(message)
}

func (zl *ZapLogger) Info(message string) {
	zl.l.Info(message)
}

func (zl *ZapLogger) Warn(message string, errs ...error) {
	zl.l.Warn(message, zapErrors(errs)...)
}

func (zl *ZapLogger) Error(message string, errs ...error) {
	zl.l.Error(message, zapErrors(errs)...)
}

// Close flushes the buffered log entries.
func (zl *ZapLogger) Close() error {
	return zl.l.Sync()
}

func zapErrors(errs []error) []zap.Field {
	if len(errs) == 0 {
		return nil
	}
	return []zap.Field{zap.Errors("errors", errs)}
}
