package loglevels

import "strings"

const (
	TRACE LogLevel = iota
	DEBUG
	INFO
	WARN
	ERROR
)

// LogLevel is a type that represents a log level.
// The hierarchy of log levels is the following: TRACE < DEBUG < INFO < WARN < ERROR.
type LogLevel int

func (ll LogLevel) String() string {
	switch ll {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Prefix returns the prefix the built-in loggers put between the timestamp and the message, e.g. " [INFO] ".
func (ll LogLevel) Prefix() string {
	return " [" + ll.String() + "] "
}

// Enabled reports whether a message of the provided level passes a logger configured with this level.
func (ll LogLevel) Enabled(msgLevel LogLevel) bool {
	return ll <= msgLevel
}

// Parse converts a case-insensitive level name (e.g. "debug") to a LogLevel.
// The second return value is false if the name is unknown.
func Parse(name string) (LogLevel, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return TRACE, true
	case "DEBUG":
		return DEBUG, true
	case "INFO":
		return INFO, true
	case "WARN", "WARNING":
		return WARN, true
	case "ERROR":
		return ERROR, true
	default:
		return 0, false
	}
}
