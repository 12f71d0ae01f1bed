// Package logging builds the zerolog logger used by the gridpath command.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is the logger type used throughout the command.
type Logger = zerolog.Logger

// Config holds the logging settings.
type Config struct {
	// Level is a zerolog level name such as "debug" or "info".
	// An unknown or empty level means info.
	Level string

	// Pretty selects human-readable console output instead of JSON.
	Pretty bool
}

// New returns a logger writing to w, or to stderr if w is nil.
func New(cfg Config, w io.Writer) Logger {
	if w == nil {
		w = os.Stderr
	}
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
