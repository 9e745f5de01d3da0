package pricing

import (
	"bufio"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jwang-trading/bondpipeline/internal/codec"
	"github.com/jwang-trading/bondpipeline/internal/pipelineerr"
	"github.com/jwang-trading/bondpipeline/internal/product"
)

// Connector is subscribe-only: it parses "productId bidPx offerPx" lines from
// prices.txt and calls Service.OnMessage. Publish is a no-op since this
// connector never writes outward, per spec §4.1.
type Connector struct {
	service *Service
	log     zerolog.Logger
}

// NewConnector binds a Connector to the service it feeds.
func NewConnector(service *Service, log zerolog.Logger) *Connector {
	return &Connector{service: service, log: log.With().Str("connector", "pricing").Logger()}
}

// Subscribe reads whitespace-separated price lines until r is exhausted.
// ParseError and UnknownProduct records are logged and skipped; a scan
// failure is returned as an IOError since the pipeline can no longer trust
// it has seen the whole file.
func (c *Connector) Subscribe(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := c.parseLine(line); err != nil {
			c.log.Warn().Err(err).Str("line", line).Msg("skipping price record")
		}
	}
	if err := scanner.Err(); err != nil {
		return pipelineerr.Wrap(pipelineerr.CodeIO, "reading prices.txt", err)
	}
	return nil
}

// Publish is a no-op: this connector is subscribe-only.
func (c *Connector) Publish(Price) error { return nil }

func (c *Connector) parseLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return pipelineerr.Parsef("expected 3 fields, got %d: %q", len(fields), line)
	}

	bond, ok := product.Lookup(fields[0])
	if !ok {
		return pipelineerr.UnknownProductf("unknown productId %q", fields[0])
	}

	bid, err := codec.Decode(fields[1])
	if err != nil {
		return err
	}
	offer, err := codec.Decode(fields[2])
	if err != nil {
		return err
	}

	c.service.OnMessage(NewPrice(bond, bid, offer))
	return nil
}
