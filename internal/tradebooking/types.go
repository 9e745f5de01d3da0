// Package tradebooking implements TradeBookingService (spec §4.9): it books
// trades from the trade file and, via a back-edge listener on Execution,
// synthesizes a Trade for every ExecutionOrder fill.
package tradebooking

import (
	"github.com/shopspring/decimal"

	"github.com/jwang-trading/bondpipeline/internal/product"
	"github.com/jwang-trading/bondpipeline/internal/side"
)

// Book enumerates the three trading books trades settle into.
type Book int

const (
	TRSY1 Book = iota
	TRSY2
	TRSY3
)

func (b Book) String() string {
	switch b {
	case TRSY1:
		return "TRSY1"
	case TRSY2:
		return "TRSY2"
	case TRSY3:
		return "TRSY3"
	default:
		return "UNKNOWN"
	}
}

// ParseBook parses "TRSY1"/"TRSY2"/"TRSY3".
func ParseBook(s string) (Book, bool) {
	switch s {
	case "TRSY1":
		return TRSY1, true
	case "TRSY2":
		return TRSY2, true
	case "TRSY3":
		return TRSY3, true
	default:
		return 0, false
	}
}

// Trade is a single booked fill.
type Trade struct {
	Product  product.Bond
	TradeID  string
	Price    decimal.Decimal
	Book     Book
	Quantity int64
	Side     side.TradeSide
}

// ProductID is the identity key used by PositionService's fan-out; Trade
// itself is keyed by TradeID within TradeBookingService's own store.
func (t Trade) ProductID() string { return t.Product.ProductID() }
