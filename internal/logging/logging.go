// Package logging configures the structured logger shared by the CLI
// commands. Diagnostics go to stderr so stdout stays clean for report
// output.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New creates a console logger writing to w. Verbose enables debug-level
// events.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(console).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Nop returns a logger that discards everything. Useful in tests.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
