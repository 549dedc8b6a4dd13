package logsvc

import (
	"io"
	"log"

	"github.com/trezcool/gradecalc/core"
)

// StdLogger only prints to a std logger. Used by tests and the CLI.
type StdLogger struct {
	std   *log.Logger
	debug bool
}

var _ core.Logger = (*StdLogger)(nil)

func NewStdLogger(w io.Writer, prefix string, debug bool) *StdLogger {
	return &StdLogger{
		std:   log.New(w, prefix, log.LstdFlags|log.Lmicroseconds),
		debug: debug,
	}
}

// NewDiscardLogger drops every entry.
func NewDiscardLogger() *StdLogger {
	return NewStdLogger(io.Discard, "", false)
}

func (l StdLogger) print(level, msg string, args []interface{}) {
	l.std.Println(level + ": " + msg)
	for _, arg := range args {
		l.std.Printf("%+v\n", arg)
	}
}

func (l StdLogger) Debug(msg string, args ...interface{}) {
	if l.debug {
		l.print("DEBUG", msg, args)
	}
}

func (l StdLogger) Info(msg string, args ...interface{})  { l.print("INFO", msg, args) }
func (l StdLogger) Warn(msg string, args ...interface{})  { l.print("WARN", msg, args) }
func (l StdLogger) Error(msg string, args ...interface{}) { l.print("ERROR", msg, args) }

func (l StdLogger) Fatal(msg string, args ...interface{}) {
	l.print("FATAL", msg, args)
	l.std.Fatal(msg)
}
