package tradebooking

import (
	"github.com/jwang-trading/bondpipeline/internal/execution"
	"github.com/jwang-trading/bondpipeline/internal/side"
	"github.com/jwang-trading/bondpipeline/internal/soa"
)

// rotation is the round-robin order trades are assigned into books, per
// spec §4.9.
var rotation = [3]Book{TRSY1, TRSY2, TRSY3}

// BackEdge implements soa.ServiceListener[execution.ExecutionOrder]: every
// ExecutionOrder delivered by ExecutionService is synthesized into a Trade
// and booked, closing the Execution -> TradeBooking edge of the pipeline.
type BackEdge struct {
	soa.BaseListener[execution.ExecutionOrder]
	target *Service

	counter int
}

// NewBackEdge binds a BackEdge to the TradeBookingService it feeds.
func NewBackEdge(target *Service) *BackEdge {
	return &BackEdge{target: target}
}

// ProcessAdd synthesizes a Trade from order and books it. Lifting the offer
// means the book bought, so an OFFER-side order books a BUY; hitting the bid
// means the book sold, so a BID-side order books a SELL.
func (b *BackEdge) ProcessAdd(order execution.ExecutionOrder) {
	tradeSide := side.Buy
	if order.Side == side.Bid {
		tradeSide = side.Sell
	}

	book := rotation[b.counter%len(rotation)]
	b.counter++

	b.target.OnMessage(Trade{
		Product:  order.Product,
		TradeID:  order.OrderID,
		Price:    order.Price,
		Book:     book,
		Quantity: order.VisibleQty + order.HiddenQty,
		Side:     tradeSide,
	})
}
