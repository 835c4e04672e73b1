package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New constructs a JSON zerolog logger writing to stdout.
// Unparseable levels fall back to info.
func New(level, service string) zerolog.Logger {
	parsed := zerolog.InfoLevel
	if lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level))); err == nil {
		parsed = lvl
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(os.Stdout).
		Level(parsed).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}
