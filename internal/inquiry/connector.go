package inquiry

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

// Connector is the bidirectional edge spec.md §4.12 describes: Subscribe
// parses inquiries.txt rows and hands each to the service's OnMessage,
// which drives its own internal publish loopback to settle it.
type Connector struct {
	service *Service
	log     zerolog.Logger
}

// NewConnector binds a Connector to the service it feeds.
func NewConnector(service *Service, log zerolog.Logger) *Connector {
	return &Connector{service: service, log: log.With().Str("connector", "inquiry").Logger()}
}

// Subscribe reads inquiries.txt rows until r is exhausted, settling one
// inquiry (through RECEIVED -> QUOTED -> DONE) per well-formed line.
func (c *Connector) Subscribe(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		inq, err := c.parseLine(line)
		if err != nil {
			c.log.Warn().Err(err).Str("line", line).Msg("skipping inquiry record")
			continue
		}
		c.service.OnMessage(inq)
	}
	if err := scanner.Err(); err != nil {
		return pipelineerr.Wrap(pipelineerr.CodeIO, "reading inquiries.txt", err)
	}
	return nil
}

// Publish is a no-op at the connector layer: the negotiation loopback lives
// inside Service.OnMessage, not here.
func (c *Connector) Publish(Inquiry) error { return nil }

func (c *Connector) parseLine(line string) (Inquiry, error) {
	fields := strings.Fields(line)
	if len(fields) != 6 {
		return Inquiry{}, pipelineerr.Parsef("expected 6 fields, got %d: %q", len(fields), line)
	}

	bond, ok := product.Lookup(fields[1])
	if !ok {
		return Inquiry{}, pipelineerr.UnknownProductf("unknown productId %q", fields[1])
	}

	tradeSide, ok := side.ParseTradeSide(fields[2])
	if !ok {
		return Inquiry{}, pipelineerr.Parsef("invalid side %q", fields[2])
	}

	qty, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil || qty <= 0 {
		return Inquiry{}, pipelineerr.Parsef("invalid quantity %q", fields[3])
	}

	price, err := codec.Decode(fields[4])
	if err != nil {
		return Inquiry{}, err
	}

	state, ok := ParseState(fields[5])
	if !ok {
		return Inquiry{}, pipelineerr.Parsef("invalid state %q", fields[5])
	}

	return Inquiry{
		InquiryID: fields[0],
		Product:   bond,
		Side:      tradeSide,
		Quantity:  qty,
		Price:     price,
		State:     state,
	}, nil
}
