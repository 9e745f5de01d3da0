package tradebooking

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jwang-trading/bondpipeline/internal/codec"
	"github.com/jwang-trading/bondpipeline/internal/pipelineerr"
	"github.com/jwang-trading/bondpipeline/internal/product"
	"github.com/jwang-trading/bondpipeline/internal/side"
)

// Connector is subscribe-only: it parses "productId tradeId price book
// quantity side" rows from trades.txt.
type Connector struct {
	service *Service
	log     zerolog.Logger
}

// NewConnector binds a Connector to the service it feeds.
func NewConnector(service *Service, log zerolog.Logger) *Connector {
	return &Connector{service: service, log: log.With().Str("connector", "tradebooking").Logger()}
}

// Subscribe reads trades.txt rows until r is exhausted, booking one trade
// per well-formed line.
func (c *Connector) Subscribe(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		trade, err := c.parseLine(line)
		if err != nil {
			c.log.Warn().Err(err).Str("line", line).Msg("skipping trade record")
			continue
		}
		c.service.OnMessage(trade)
	}
	if err := scanner.Err(); err != nil {
		return pipelineerr.Wrap(pipelineerr.CodeIO, "reading trades.txt", err)
	}
	return nil
}

// Publish is a no-op: this connector is subscribe-only.
func (c *Connector) Publish(Trade) error { return nil }

func (c *Connector) parseLine(line string) (Trade, error) {
	fields := strings.Fields(line)
	if len(fields) != 6 {
		return Trade{}, pipelineerr.Parsef("expected 6 fields, got %d: %q", len(fields), line)
	}

	bond, ok := product.Lookup(fields[0])
	if !ok {
		return Trade{}, pipelineerr.UnknownProductf("unknown productId %q", fields[0])
	}

	price, err := codec.Decode(fields[2])
	if err != nil {
		return Trade{}, err
	}

	book, ok := ParseBook(fields[3])
	if !ok {
		return Trade{}, pipelineerr.Parsef("invalid book %q", fields[3])
	}

	qty, err := strconv.ParseInt(fields[4], 10, 64)
	if err != nil || qty <= 0 {
		return Trade{}, pipelineerr.Parsef("invalid quantity %q", fields[4])
	}

	tradeSide, ok := side.ParseTradeSide(fields[5])
	if !ok {
		return Trade{}, pipelineerr.Parsef("invalid side %q", fields[5])
	}

	return Trade{
		Product:  bond,
		TradeID:  fields[1],
		Price:    price,
		Book:     book,
		Quantity: qty,
		Side:     tradeSide,
	}, nil
}
