package marketdata

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

// Connector is subscribe-only: it parses "productId priceFrac quantity side"
// rows and, every 2*Levels rows, assembles and delivers an OrderBook. This
// mirrors original_source's MarketDataConnector::Subscribe literally: the
// running count and the two accumulator stacks are global to the stream, not
// keyed per product, so the emitted OrderBook takes the productId of the
// last row in each run of 2*Levels.
type Connector struct {
	service *Service
	log     zerolog.Logger
}

// NewConnector binds a Connector to the service it feeds.
func NewConnector(service *Service, log zerolog.Logger) *Connector {
	return &Connector{service: service, log: log.With().Str("connector", "marketdata").Logger()}
}

// Subscribe reads marketdata.txt rows until r is exhausted, assembling and
// delivering a book after every 2*Levels rows.
func (c *Connector) Subscribe(r io.Reader) error {
	runLength := 2 * c.service.Levels
	var bidStack, offerStack []Order
	var lastBond product.Bond
	count := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		order, bond, err := c.parseLine(line)
		if err != nil {
			c.log.Warn().Err(err).Str("line", line).Msg("skipping market data record")
			continue
		}
		lastBond = bond

		switch order.Side {
		case side.Bid:
			bidStack = append(bidStack, order)
		case side.Offer:
			offerStack = append(offerStack, order)
		}
		count++

		if count%runLength == 0 {
			c.service.OnMessage(OrderBook{Product: lastBond, BidStack: bidStack, OfferStack: offerStack})
			bidStack, offerStack = nil, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return pipelineerr.Wrap(pipelineerr.CodeIO, "reading marketdata.txt", err)
	}
	return nil
}

// Publish is a no-op: this connector is subscribe-only.
func (c *Connector) Publish(OrderBook) error { return nil }

func (c *Connector) parseLine(line string) (Order, product.Bond, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return Order{}, product.Bond{}, pipelineerr.Parsef("expected 4 fields, got %d: %q", len(fields), line)
	}

	bond, ok := product.Lookup(fields[0])
	if !ok {
		return Order{}, product.Bond{}, pipelineerr.UnknownProductf("unknown productId %q", fields[0])
	}

	price, err := codec.Decode(fields[1])
	if err != nil {
		return Order{}, product.Bond{}, err
	}

	qty, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil || qty <= 0 {
		return Order{}, product.Bond{}, pipelineerr.Parsef("invalid quantity %q", fields[2])
	}

	s, ok := side.ParsePricingSide(fields[3])
	if !ok {
		return Order{}, product.Bond{}, pipelineerr.Parsef("invalid side %q", fields[3])
	}

	return Order{Price: price, Quantity: qty, Side: s}, bond, nil
}
