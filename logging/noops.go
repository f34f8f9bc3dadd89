package logging

// NoOpsLogger is a logger that does nothing.
// This is a default logger for the pipelines if no logger is configured.
type NoOpsLogger struct{}

var noOps = NoOpsLogger{}

func NewNoOpsLogger() Logger {
	return noOps
}

func (NoOpsLogger) Trace(string) {}

func (NoOpsLogger) Debug(string) {}

func (NoOpsLogger) Info(string) {}

func (NoOpsLogger) Warn(string, ...error) {}

func (NoOpsLogger) Error(string, ...error) {}

func (NoOpsLogger) Close() error {
	return nil
}
