// Package logging provides the logger abstraction used by the pipeline stages and terminals.
//
// The default logger is [NoOpsLogger], which discards everything.
// The built-in [ConsoleLogger] and [ChannelLogger] are handy for debugging,
// while [SlogLogger] and [ZapLogger] plug the pipelines into the application's existing logging setup.
package logging

import (
	"fmt"
	"strings"
	"time"
)

type Logger interface {
	Trace(message string)
	Debug(message string)
	Info(message string)
	Warn(message string, errs ...error)
	Error(message string, errs ...error)
	Close() error
}

const timeFormat = "2006-01-02 15:04:05.000000000"

func timestamp() string {
	return time.Now().Format(timeFormat)
}

// withErrors appends the non-nil errors to the message, e.g. "stage 3: failed [item not found]".
func withErrors(message string, errs ...error) string {
	if len(errs) == 0 {
		return message
	}

	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			msgs = append(msgs, err.Error())
		}
	}
	if len(msgs) == 0 {
		return message
	}
	return fmt.Sprintf("%s [%s]", message, strings.Join(msgs, "; "))
}
