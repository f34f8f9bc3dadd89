package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/n0rdy/fallible/types/loglevels"
)

// ConsoleLogger is a logger that prints logs to the console (stdout by default).
//
// ConsoleLogger accepts a log level as a parameter.
// It will print only those logs that have a level equal or higher than the specified one.
// Check [loglevels.LogLevel] for more details.
//
// The format of logs is: "time [log level] message"
// Example:
// 2006-01-02 15:04:05.000000000 [INFO] stage 3: finished
type ConsoleLogger struct {
	out   io.Writer
	level loglevels.LogLevel
}

func NewConsoleLogger(level loglevels.LogLevel) Logger {
	return NewWriterLogger(os.Stdout, level)
}

// NewWriterLogger creates a [ConsoleLogger] that writes to the provided writer instead of stdout.
func NewWriterLogger(out io.Writer, level loglevels.LogLevel) Logger {
	return &ConsoleLogger{
		out:   out,
		level: level,
	}
}

func (cl *ConsoleLogger) Trace(message string) {
	cl.print(loglevels.TRACE, message)
}

func (cl *ConsoleLogger) Debug(message string) {
	cl.print(loglevels.DEBUG, message)
}

func (cl *ConsoleLogger) Info(message string) {
	cl.print(loglevels.INFO, message)
}

func (cl *ConsoleLogger) Warn(message string, errs ...error) {
	cl.print(loglevels.WARN, message, errs...)
}

func (cl *ConsoleLogger) Error(message string, errs ...error) {
	cl.print(loglevels.ERROR, message, errs...)
}

func (cl *ConsoleLogger) Close() error {
	return nil
}

// print builds the line only if the level is enabled, so the errors are not formatted for the dropped messages.
func (cl *ConsoleLogger) print(level loglevels.LogLevel, message string, errs ...error) {
	if cl.level.Enabled(level) {
		fmt.Fprintln(cl.out, timestamp()+level.Prefix()+withErrors(message, errs...))
	}
}
