// Package main is the bond pipeline's entry point. It wires every domain
// service into the listener graph spec.md §2 describes, then replays
// ./input/*.txt through them in a fixed order: prices, market data, trades,
// inquiries. There are no CLI flags beyond an optional config file path, per
// spec.md §6.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/jwang-trading/bondpipeline/internal/algoexecution"
	"github.com/jwang-trading/bondpipeline/internal/algostreaming"
	"github.com/jwang-trading/bondpipeline/internal/clock"
	"github.com/jwang-trading/bondpipeline/internal/config"
	"github.com/jwang-trading/bondpipeline/internal/execution"
	"github.com/jwang-trading/bondpipeline/internal/gui"
	"github.com/jwang-trading/bondpipeline/internal/historical"
	"github.com/jwang-trading/bondpipeline/internal/inquiry"
	"github.com/jwang-trading/bondpipeline/internal/logging"
	"github.com/jwang-trading/bondpipeline/internal/marketdata"
	"github.com/jwang-trading/bondpipeline/internal/pipelineerr"
	"github.com/jwang-trading/bondpipeline/internal/position"
	"github.com/jwang-trading/bondpipeline/internal/pricing"
	"github.com/jwang-trading/bondpipeline/internal/risk"
	"github.com/jwang-trading/bondpipeline/internal/streaming"
	"github.com/jwang-trading/bondpipeline/internal/tradebooking"
)

func main() {
	configPath := flag.String("config", "", "path to an optional config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("pipeline aborted")
		os.Exit(1)
	}
}

// wiring holds every service the driver constructs, so run can wire the
// listener graph before touching any input file.
type wiring struct {
	pricingSvc      *pricing.Service
	algoStreamSvc   *algostreaming.Service
	streamingSvc    *streaming.Service
	marketDataSvc   *marketdata.Service
	algoExecSvc     *algoexecution.Service
	executionSvc    *execution.Service
	tradeBookingSvc *tradebooking.Service
	positionSvc     *position.Service
	riskSvc         *risk.Service
	inquirySvc      *inquiry.Service
	guiSvc          *gui.Service
}

func newWiring(cfg *config.Config, clk clock.Clock, log zerolog.Logger) *wiring {
	return &wiring{
		pricingSvc:      pricing.NewService(),
		algoStreamSvc:   algostreaming.NewService(),
		streamingSvc:    streaming.NewService(),
		marketDataSvc:   marketdata.NewService(cfg.OrderBookLevels),
		algoExecSvc:     algoexecution.NewService(clk),
		executionSvc:    execution.NewService(),
		tradeBookingSvc: tradebooking.NewService(),
		positionSvc:     position.NewService(),
		riskSvc:         risk.NewService(),
		inquirySvc:      inquiry.NewService(),
		guiSvc:          gui.NewService(filepath.Join(cfg.OutputDir, "gui.txt"), cfg.GUIThrottle, clk, log),
	}
}

// connect wires the listener graph in exactly the order SPEC_FULL.md §2
// lists it (which mirrors the original's wiring order in main.cpp): the
// forward chain Pricing/MarketData -> ... -> Execution/TradeBooking/
// Position/Risk/Streaming, the Execution->TradeBooking back-edge, then every
// Historical fan-out leaf last.
func (w *wiring) connect(hist *historicalSinks) {
	w.pricingSvc.AddListener(w.algoStreamSvc)
	w.pricingSvc.AddListener(w.guiSvc)

	w.tradeBookingSvc.AddListener(w.positionSvc)
	w.positionSvc.AddListener(w.riskSvc)

	w.marketDataSvc.AddListener(w.algoExecSvc)
	w.algoExecSvc.AddListener(algoexecution.NewForwarder(w.executionSvc))
	w.algoStreamSvc.AddListener(algostreaming.NewForwarder(w.streamingSvc))

	w.executionSvc.AddListener(tradebooking.NewBackEdge(w.tradeBookingSvc))

	w.positionSvc.AddListener(hist.position)
	w.riskSvc.AddListener(hist.risk)
	w.executionSvc.AddListener(hist.execution)
	w.streamingSvc.AddListener(hist.streaming)
	w.inquirySvc.AddListener(hist.inquiry)
}

// historicalSinks groups the five HistoricalDataService[V] instantiations
// spec.md §4.13 enumerates, one per journal file.
type historicalSinks struct {
	position  *historical.Service[position.Position]
	risk      *historical.Service[risk.PV01]
	execution *historical.Service[execution.ExecutionOrder]
	streaming *historical.Service[streaming.PriceStream]
	inquiry   *historical.Service[inquiry.Inquiry]
}

func newHistoricalSinks(cfg *config.Config, clk clock.Clock, log zerolog.Logger) *historicalSinks {
	out := cfg.OutputDir
	return &historicalSinks{
		position:  historical.NewService(filepath.Join(out, "positions.txt"), clk, historical.EncodePosition, log),
		risk:      historical.NewService(filepath.Join(out, "risk.txt"), clk, historical.EncodeRisk, log),
		execution: historical.NewService(filepath.Join(out, "executions.txt"), clk, historical.EncodeExecution, log),
		streaming: historical.NewService(filepath.Join(out, "streaming.txt"), clk, historical.EncodeStreaming, log),
		inquiry:   historical.NewService(filepath.Join(out, "allinquiries.txt"), clk, historical.EncodeInquiry, log),
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	clk := clock.Default

	w := newWiring(cfg, clk, log)
	hist := newHistoricalSinks(cfg, clk, log)
	w.connect(hist)

	pricingConnector := pricing.NewConnector(w.pricingSvc, log)
	marketDataConnector := marketdata.NewConnector(w.marketDataSvc, log)
	tradeBookingConnector := tradebooking.NewConnector(w.tradeBookingSvc, log)
	inquiryConnector := inquiry.NewConnector(w.inquirySvc, log)

	// Sequential by file, in the order spec.md §5 fixes: prices, market
	// data, trades, inquiries. Each Subscribe call runs every record (and
	// its full synchronous fan-out) to completion before the next file is
	// opened.
	feeds := []struct {
		name string
		file string
		sub  func(io.Reader) error
	}{
		{"prices", "prices.txt", pricingConnector.Subscribe},
		{"marketdata", "marketdata.txt", marketDataConnector.Subscribe},
		{"trades", "trades.txt", tradeBookingConnector.Subscribe},
		{"inquiries", "inquiries.txt", inquiryConnector.Subscribe},
	}

	for _, feed := range feeds {
		if err := subscribeFile(filepath.Join(cfg.InputDir, feed.file), feed.sub, log); err != nil {
			return fmt.Errorf("%s: %w", feed.name, err)
		}
	}

	log.Info().Msg("all inputs drained; shutting down")
	return nil
}

// subscribeFile opens path and hands its contents to sub. A missing input
// file is logged and skipped (a run is allowed to omit a feed entirely); any
// other open failure, or a failure reported by sub, is an IOError that
// aborts the pipeline.
func subscribeFile(path string, sub func(io.Reader) error, log zerolog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn().Str("path", path).Msg("input file not found, skipping")
			return nil
		}
		return pipelineerr.Wrap(pipelineerr.CodeIO, "opening "+path, err)
	}
	defer f.Close()

	return sub(f)
}
