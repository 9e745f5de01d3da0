package algoexecution

import (
	"github.com/shopspring/decimal"

	"github.com/jwang-trading/bondpipeline/internal/clock"
	"github.com/jwang-trading/bondpipeline/internal/execution"
	"github.com/jwang-trading/bondpipeline/internal/marketdata"
	"github.com/jwang-trading/bondpipeline/internal/side"
	"github.com/jwang-trading/bondpipeline/internal/soa"
)

// minimumTick is 1/128 of a point, the only spread AlgoExecution aggresses
// on. Expressed exactly in decimal rather than as a float literal.
var minimumTick = decimal.NewFromInt(1).Div(decimal.NewFromInt(128))

// Service stores the latest AlgoExecution decision per productId and fans
// out to ExecutionService (via Forwarder, to avoid execution depending back
// on algoexecution). It implements soa.ServiceListener[marketdata.OrderBook]
// so it can be wired directly as MarketDataService's listener.
type Service struct {
	soa.Store[string, AlgoExecution]
	soa.BaseListener[marketdata.OrderBook]

	clock   clock.Clock
	counter int64
}

// NewService returns an AlgoExecutionService that stamps orderIds using clk.
func NewService(clk clock.Clock) *Service {
	return &Service{Store: soa.NewStore[string, AlgoExecution](), clock: clk}
}

// ProcessAdd receives a completed OrderBook from MarketDataService. If the
// current best bid/offer spread equals exactly 1/128, it aggresses: evens
// lift the offer, odds hit the bid. Any other spread is a no-op — nothing is
// stored or fanned out, per spec §4.7.
func (s *Service) ProcessAdd(book marketdata.OrderBook) {
	if len(book.BidStack) == 0 || len(book.OfferStack) == 0 {
		return
	}
	bo := bestBidOffer(book)

	spread := bo.BestOffer.Price.Sub(bo.BestBid.Price)
	if !spread.Equal(minimumTick) {
		return
	}

	aggressOffer := s.counter%2 == 0
	s.counter++

	order := execution.ExecutionOrder{
		Product:       book.Product,
		OrderType:     execution.Market,
		OrderID:       clock.Timestamp(s.clock.Now()),
		ParentOrderID: "",
		IsChild:       false,
		HiddenQty:     0,
	}
	if aggressOffer {
		order.Side = side.Offer
		order.Price = bo.BestOffer.Price
		order.VisibleQty = bo.BestOffer.Quantity
	} else {
		order.Side = side.Bid
		order.Price = bo.BestBid.Price
		order.VisibleQty = bo.BestBid.Quantity
	}

	algo := AlgoExecution{Order: order, Triggered: true}
	s.Put(algo.ProductID(), algo)
	s.NotifyAdd(algo)
}

// bestBidOffer reproduces MarketDataService's BestBidOffer: maximum-price
// bid and minimum-price offer, first-seen-wins on ties.
func bestBidOffer(book marketdata.OrderBook) marketdata.BidOffer {
	var bo marketdata.BidOffer
	bidSet, offerSet := false, false

	for _, o := range book.BidStack {
		if !bidSet || o.Price.GreaterThan(bo.BestBid.Price) {
			bo.BestBid = o
			bidSet = true
		}
	}
	for _, o := range book.OfferStack {
		if !offerSet || o.Price.LessThan(bo.BestOffer.Price) {
			bo.BestOffer = o
			offerSet = true
		}
	}
	return bo
}
