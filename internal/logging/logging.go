// Package logging configures the zerolog logger shared by the rxload
// commands. Logs go to stderr so sorted record output on stdout stays
// machine-readable.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup returns the process logger. format "text" gives a human-friendly
// console writer; anything else (the "json" default for pipelines) emits
// structured JSON.
func Setup(format string) zerolog.Logger {
	var log zerolog.Logger
	if format == "text" {
		log = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	} else {
		log = zerolog.New(os.Stderr)
	}
	return log.With().Timestamp().Str("app", "rxload").Logger()
}
