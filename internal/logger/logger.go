// Package logger provides a thin wrapper around zerolog.Logger with the
// constructors the application uses. Embedding zerolog.Logger exposes the
// full zerolog API directly on *Logger.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger
type Logger struct {
	zerolog.Logger
}

// New constructs a logger writing human-readable output to stdout with a
// timestamp on every entry.
func New() *Logger {
	out := zerolog.ConsoleWriter{Out: os.Stdout}
	l := zerolog.New(out).With().Timestamp().Logger()
	return &Logger{l}
}

// Nop returns a logger that discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
