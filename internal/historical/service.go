// Package historical implements HistoricalDataService (spec §4.13): a sink
// parameterized by an entity type and its line-encoder that appends
// timestamp-prefixed records to a journal file, one append per event.
//
// A write failure here is an IOError and, per spec.md §7, listener
// callbacks do not propagate failures — a failing journal write aborts the
// process rather than risk the in-memory caches and journals drifting out
// of sync. Since ServiceListener.ProcessAdd returns nothing, that abort is
// expressed as a zerolog Fatal call (os.Exit(1) after logging), matching the
// log.Fatal pattern used for unrecoverable startup/runtime failures across
// the retrieved pack.
package historical

import (
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jwang-trading/bondpipeline/internal/clock"
	"github.com/jwang-trading/bondpipeline/internal/soa"
)

// Encoder renders v's fields, in wire order, excluding the timestamp prefix
// every journal line carries.
type Encoder[V any] func(v V) []string

// Service[V] is a generic append-only journal sink. It implements
// soa.ServiceListener[V] so it can be registered directly as any domain
// service's listener.
type Service[V any] struct {
	soa.BaseListener[V]

	path   string
	clk    clock.Clock
	encode Encoder[V]
	log    zerolog.Logger
}

// NewService returns a Service[V] that appends to path, one line per event.
func NewService[V any](path string, clk clock.Clock, encode Encoder[V], log zerolog.Logger) *Service[V] {
	return &Service[V]{path: path, clk: clk, encode: encode, log: log.With().Str("journal", path).Logger()}
}

// ProcessAdd renders v via encode, prefixes it with the current timestamp,
// and appends the whitespace-joined, newline-terminated record to path.
func (s *Service[V]) ProcessAdd(v V) {
	fields := append([]string{clock.Timestamp(s.clk.Now())}, s.encode(v)...)
	if err := appendLine(s.path, strings.Join(fields, " ")); err != nil {
		s.log.Fatal().Err(err).Msg("failed to append journal record")
	}
}

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		return err
	}
	return nil
}

