// Package pricing implements PricingService (spec §4.3): it stores the
// latest Price per product and fans out to AlgoStreaming and GUI.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jwang-trading/bondpipeline/internal/product"
)

// Price is the latest two-sided quote for a product: mid and the bid/offer
// spread it was computed from. Immutable — a new quote replaces it wholesale.
type Price struct {
	Product        product.Bond
	Mid            decimal.Decimal
	BidOfferSpread decimal.Decimal
}

// ProductID is the identity key Price is stored under.
func (p Price) ProductID() string { return p.Product.ProductID() }

var two = decimal.NewFromInt(2)

// NewPrice computes mid and spread from a raw bid/offer pair, per spec §4.3:
// mid = (bid+offer)/2, spread = offer-bid.
func NewPrice(bond product.Bond, bid, offer decimal.Decimal) Price {
	return Price{
		Product:        bond,
		Mid:            bid.Add(offer).Div(two),
		BidOfferSpread: offer.Sub(bid),
	}
}
