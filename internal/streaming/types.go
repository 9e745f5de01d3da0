// Package streaming implements StreamingService (spec §4.5): a passive
// store that upserts the PriceStream algostreaming.Forwarder unwraps from
// each AlgoStream, and fans out to HistStreaming.
package streaming

import (
	"github.com/shopspring/decimal"

	"github.com/jwang-trading/bondpipeline/internal/product"
	"github.com/jwang-trading/bondpipeline/internal/side"
)

// PriceStreamOrder is one side of a two-sided quote stream: a price plus the
// visible and hidden quantity the market maker is willing to show/work.
type PriceStreamOrder struct {
	Price     decimal.Decimal
	VisibleQty int64
	HiddenQty  int64
	Side       side.PricingSide
}

// PriceStream is the published two-sided quote for a product.
type PriceStream struct {
	Product   product.Bond
	BidOrder  PriceStreamOrder
	OfferOrder PriceStreamOrder
}

// ProductID is the identity key PriceStream is stored under.
func (p PriceStream) ProductID() string { return p.Product.ProductID() }
