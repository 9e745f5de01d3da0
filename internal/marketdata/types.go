// Package marketdata implements MarketDataService (spec §4.6): it assembles
// order book depth from marketdata.txt, aggregates duplicate price levels,
// and fans out completed books to AlgoExecution.
package marketdata

import (
	"github.com/shopspring/decimal"

	"github.com/jwang-trading/bondpipeline/internal/product"
	"github.com/jwang-trading/bondpipeline/internal/side"
)

// Order is a single L2 price level: a price, a positive quantity, and which
// side of the book it sits on.
type Order struct {
	Price    decimal.Decimal
	Quantity int64
	Side     side.PricingSide
}

// BidOffer pairs the best bid and best offer of a book.
type BidOffer struct {
	BestBid   Order
	BestOffer Order
}

// OrderBook is a full depth snapshot for one product. The entire book is
// replaced wholesale on update — there is no incremental diffing.
type OrderBook struct {
	Product    product.Bond
	BidStack   []Order
	OfferStack []Order
}

// ProductID is the identity key OrderBook is stored under.
func (b OrderBook) ProductID() string { return b.Product.ProductID() }
