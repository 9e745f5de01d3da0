package marketdata

import (
	"github.com/jwang-trading/bondpipeline/internal/side"
	"github.com/jwang-trading/bondpipeline/internal/soa"
)

// Service stores the latest OrderBook per productId and fans out completed
// books to its listener (AlgoExecution). Levels is the per-side depth the
// connector groups raw rows into (5, per spec §4.6; configurable so tests
// can use a smaller book).
type Service struct {
	soa.Store[string, OrderBook]
	Levels int
}

// NewService returns a MarketDataService with the given per-side depth.
func NewService(levels int) *Service {
	return &Service{Store: soa.NewStore[string, OrderBook](), Levels: levels}
}

// OnMessage upserts book by productId and notifies listeners.
func (s *Service) OnMessage(book OrderBook) {
	s.Put(book.ProductID(), book)
	s.NotifyAdd(book)
}

// BestBidOffer returns the maximum-price bid order and minimum-price offer
// order from the current (non-aggregated) stacks of productId's book, ties
// broken by first-seen, per spec §4.6.
func (s *Service) BestBidOffer(productID string) BidOffer {
	return bestBidOffer(s.GetData(productID))
}

func bestBidOffer(book OrderBook) BidOffer {
	var bo BidOffer
	bestBidSet, bestOfferSet := false, false

	for _, o := range book.BidStack {
		if !bestBidSet || o.Price.GreaterThan(bo.BestBid.Price) {
			bo.BestBid = o
			bestBidSet = true
		}
	}
	for _, o := range book.OfferStack {
		if !bestOfferSet || o.Price.LessThan(bo.BestOffer.Price) {
			bo.BestOffer = o
			bestOfferSet = true
		}
	}
	return bo
}

// AggregateDepth collapses duplicate prices on each side of productId's
// current book by summing quantities, returning a book ordered by ascending
// price within each stack — matching original_source's std::map<double,long>
// aggregation, which iterates keys in ascending order (spec §4.6).
func (s *Service) AggregateDepth(productID string) OrderBook {
	book := s.GetData(productID)
	return OrderBook{
		Product:    book.Product,
		BidStack:   aggregateSide(book.BidStack, side.Bid),
		OfferStack: aggregateSide(book.OfferStack, side.Offer),
	}
}

func aggregateSide(orders []Order, s side.PricingSide) []Order {
	levels := make([]Order, 0, len(orders))
	index := make(map[string]int, len(orders))

	for _, o := range orders {
		key := o.Price.String()
		if i, ok := index[key]; ok {
			levels[i].Quantity += o.Quantity
			continue
		}
		index[key] = len(levels)
		levels = append(levels, Order{Price: o.Price, Quantity: o.Quantity, Side: s})
	}

	return ascendingByPrice(levels)
}
