package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the service logger. ConsoleWriter gives human-readable,
// colorized output; the logger is passed down explicitly rather than
// installed as a package global.
func New(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Caller().
		Logger()
}
