package logger

import (
	"io"
	"log"
)

// Logger wraps a few log.Logger instances in private fields.
// They are accessible via their respective methods.
type Logger struct {
	debug   *log.Logger
	info    *log.Logger
	error   *log.Logger
	verbose bool
}

// NewLoggerWithWriters sends info to out and everything else to errOut.
// The full-screen browser owns the terminal, so it hands in a log file
// (or io.Discard) for both.
func NewLoggerWithWriters(out, errOut io.Writer, verbose bool) *Logger {
	return &Logger{
		debug:   log.New(errOut, "", 0),
		info:    log.New(out, "", 0),
		error:   log.New(errOut, "", 0),
		verbose: verbose,
	}
}

// NewFileLogger is used by the browser: debug lines are timestamped since
// they interleave with asynchronous fetch results.
func NewFileLogger(w io.Writer, verbose bool) *Logger {
	return &Logger{
		debug:   log.New(w, "debug ", log.LstdFlags|log.Lmicroseconds),
		info:    log.New(w, "info  ", log.LstdFlags),
		error:   log.New(w, "error ", log.LstdFlags),
		verbose: verbose,
	}
}

// Discard drops everything.
func Discard() *Logger {
	return NewLoggerWithWriters(io.Discard, io.Discard, false)
}

// Debug prints a formatted message only if verbose is set.
// Consider these messages useful for developers of the CLI.
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.verbose {
		l.debug.Printf(format, args...)
	}
}

// Info prints all args to the info writer.
// It's commonly used for messages we want to show the user.
func (l *Logger) Info(args ...interface{}) {
	l.info.Print(args...)
}

// Infoln prints all args followed by a newline.
func (l *Logger) Infoln(args ...interface{}) {
	l.info.Println(args...)
}

// Infof prints a formatted message to the info writer.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.info.Printf(format, args...)
}

// Error prints a message and the given error's message to the error writer.
func (l *Logger) Error(msg string, err error) {
	if err != nil {
		l.error.Print(msg, err.Error())
	}
}
