package logging

import (
	"github.com/n0rdy/fallible/types/loglevels"
)

// ChannelLogger is a logger that writes to a channel.
// Please, make sure that you read from the channel (or that it is buffered enough),
// otherwise it will block the terminal operation, as the pipelines run on the caller goroutine.
//
// ChannelLogger is handy in tests and when the logs should be shipped somewhere else without blocking on I/O.
//
// ChannelLogger accepts a log level as a parameter.
// It will send only those logs that have a level equal or higher than the specified one.
// Check [loglevels.LogLevel] for more details.
//
// Make sure to call the ChannelLogger.Close() method when you are done with the logger - this will close the channel.
type ChannelLogger struct {
	ch    chan<- string
	level loglevels.LogLevel
}

func NewChannelLogger(ch chan<- string, level loglevels.LogLevel) Logger {
	return &ChannelLogger{
		ch:    ch,
		level: level,
	}
}

func (cl *ChannelLogger) Trace(message string) {
	cl.send(loglevels.TRACE, message)
}

func (cl *ChannelLogger) Debug(message string) {
	cl.send(loglevels.DEBUG, message)
}

func (cl *ChannelLogger) Info(message string) {
	cl.send(loglevels.INFO, message)
}

func (cl *ChannelLogger) Warn(message string, errs ...error) {
	cl.send(loglevels.WARN, message, errs...)
}

func (cl *ChannelLogger) Error(message string, errs ...error) {
	cl.send(loglevels.ERROR, message, errs...)
}

func (cl *ChannelLogger) Close() error {
	close(cl.ch)
	return nil
}

func (cl *ChannelLogger) send(level loglevels.LogLevel, message string, errs ...error) {
	if cl.level.Enabled(level) {
		cl.ch <- timestamp() + level.Prefix() + withErrors(message, errs...)
	}
}
