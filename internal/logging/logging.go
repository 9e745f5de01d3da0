// Package logging builds the structured logger every service writes through.
// Grounded in the zerolog usage seen across the retrieved pack (e.g. the
// polymarket and sequex feeds under _examples/other_examples), swapped in
// here in place of the teacher's bare fmt.Printf since the teacher itself
// carries no logging dependency worth preserving over a pack-wide idiom.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// New builds a root logger. format "console" gets a human-readable writer
// (development); anything else emits newline-delimited JSON (production).
// Every log line carries a run_id field so lines from one process invocation
// can be picked out of a shared stream.
func New(level string, format string) zerolog.Logger {
	var w io.Writer = os.Stdout
	if strings.EqualFold(format, "console") {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05.000"}
	}

	zerolog.SetGlobalLevel(parseLevel(level))
	return zerolog.New(w).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
