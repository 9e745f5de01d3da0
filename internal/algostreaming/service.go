package algostreaming

import (
	"github.com/shopspring/decimal"

	"github.com/jwang-trading/bondpipeline/internal/pricing"
	"github.com/jwang-trading/bondpipeline/internal/side"
	"github.com/jwang-trading/bondpipeline/internal/soa"
	"github.com/jwang-trading/bondpipeline/internal/streaming"
)

const (
	visibleQtyEven int64 = 10_000_000
	visibleQtyOdd  int64 = 2_000_000
)

// Service stores the latest AlgoStream per productId and fans out to
// StreamingService. It implements soa.ServiceListener[pricing.Price] so it
// can be wired directly as PricingService's listener.
type Service struct {
	soa.Store[string, AlgoStream]
	soa.BaseListener[pricing.Price]

	emissions int64
}

// NewService returns an empty AlgoStreamingService.
func NewService() *Service {
	return &Service{Store: soa.NewStore[string, AlgoStream]()}
}

// ProcessAdd receives a price upsert from PricingService, emits the
// corresponding two-sided AlgoStream, and toggles the visibleQty counter.
func (s *Service) ProcessAdd(p pricing.Price) {
	visible := visibleQtyEven
	if s.emissions%2 == 1 {
		visible = visibleQtyOdd
	}
	s.emissions++

	bid, offer := bidOfferFromMid(p.Mid, p.BidOfferSpread)
	stream := streaming.PriceStream{
		Product: p.Product,
		BidOrder: streaming.PriceStreamOrder{
			Price:      bid,
			VisibleQty: visible,
			HiddenQty:  2 * visible,
			Side:       side.Bid,
		},
		OfferOrder: streaming.PriceStreamOrder{
			Price:      offer,
			VisibleQty: visible,
			HiddenQty:  2 * visible,
			Side:       side.Offer,
		},
	}

	algo := AlgoStream{Stream: stream}
	s.Put(algo.ProductID(), algo)
	s.NotifyAdd(algo)
}

// bidOfferFromMid recenters bid/offer around mid using spread, matching
// PricingService's mid = (bid+offer)/2, spread = offer-bid so that
// bid = mid - spread/2, offer = mid + spread/2.
func bidOfferFromMid(mid, spread decimal.Decimal) (bid, offer decimal.Decimal) {
	half := spread.Div(decimal.NewFromInt(2))
	return mid.Sub(half), mid.Add(half)
}
