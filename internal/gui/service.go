// Package gui implements GUIService (spec §4.14): a throttled sink that
// writes at most one price record per throttle window to gui.txt, dropping
// (not queuing) any price event that arrives too soon after the last write.
package gui

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/jwang-trading/bondpipeline/internal/clock"
	"github.com/jwang-trading/bondpipeline/internal/codec"
	"github.com/jwang-trading/bondpipeline/internal/pricing"
	"github.com/jwang-trading/bondpipeline/internal/soa"
)

// Service holds a rolling last-write timestamp and implements
// soa.ServiceListener[pricing.Price] so it can be registered directly as
// PricingService's listener.
type Service struct {
	soa.BaseListener[pricing.Price]

	path      string
	window    time.Duration
	clk       clock.Clock
	log       zerolog.Logger
	lastWrite time.Time
	written   bool
}

// NewService returns a GUIService that throttles writes to path by window.
func NewService(path string, window time.Duration, clk clock.Clock, log zerolog.Logger) *Service {
	return &Service{path: path, window: window, clk: clk, log: log.With().Str("sink", "gui").Logger()}
}

// ProcessAdd writes p to path if at least Service.window has elapsed since
// the last write; otherwise the event is silently dropped.
func (s *Service) ProcessAdd(p pricing.Price) {
	now := s.clk.Now()
	if s.written && now.Sub(s.lastWrite) < s.window {
		return
	}
	s.lastWrite = now
	s.written = true

	line, err := renderPrice(p)
	if err != nil {
		s.log.Warn().Err(err).Str("productId", p.ProductID()).Msg("dropping unencodable GUI price")
		return
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		s.log.Fatal().Err(err).Msg("failed to open gui.txt")
		return
	}
	defer f.Close()

	if _, err := f.WriteString(clock.Timestamp(now) + " " + line + "\n"); err != nil {
		s.log.Fatal().Err(err).Msg("failed to append gui.txt record")
	}
}

func renderPrice(p pricing.Price) (string, error) {
	mid, err := codec.Encode(p.Mid)
	if err != nil {
		return "", err
	}
	return p.ProductID() + " " + mid, nil
}
