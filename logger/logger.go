// Package logger provides a small structured-logging facade so library
// packages do not depend on a concrete logging backend.
package logger

import (
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// Logger is the logging interface the library writes to. Key/value pairs
// follow the message, logfmt style.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

// charmLogger implements Logger on top of charmbracelet/log.
type charmLogger struct {
	l *charmlog.Logger
}

func (c *charmLogger) Debug(msg string, keyvals ...any) { c.l.Debug(msg, keyvals...) }
func (c *charmLogger) Info(msg string, keyvals ...any)  { c.l.Info(msg, keyvals...) }
func (c *charmLogger) Warn(msg string, keyvals ...any)  { c.l.Warn(msg, keyvals...) }
func (c *charmLogger) Error(msg string, keyvals ...any) { c.l.Error(msg, keyvals...) }

// New returns a Logger writing human-readable output to w at the given level.
func New(w io.Writer, level charmlog.Level) Logger {
	return &charmLogger{
		l: charmlog.NewWithOptions(w, charmlog.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
			Level:           level,
		}),
	}
}

// Default returns an info-level Logger on stderr.
func Default() Logger {
	return New(os.Stderr, charmlog.InfoLevel)
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return &charmLogger{
		l: charmlog.NewWithOptions(io.Discard, charmlog.Options{Level: charmlog.FatalLevel}),
	}
}
