package position

import (
	"github.com/jwang-trading/bondpipeline/internal/side"
	"github.com/jwang-trading/bondpipeline/internal/soa"
	"github.com/jwang-trading/bondpipeline/internal/tradebooking"
)

// Service stores the latest Position per productId and fans out to
// RiskService and HistPosition. It implements
// soa.ServiceListener[tradebooking.Trade] so it can be wired directly as
// TradeBookingService's listener.
type Service struct {
	soa.Store[string, Position]
	soa.BaseListener[tradebooking.Trade]
}

// NewService returns an empty PositionService.
func NewService() *Service {
	return &Service{Store: soa.NewStore[string, Position]()}
}

// ProcessAdd applies trade to the product's position: quantity is added for
// a BUY, subtracted for a SELL, keyed per book.
func (s *Service) ProcessAdd(trade tradebooking.Trade) {
	delta := trade.Quantity
	if trade.Side == side.Sell {
		delta = -delta
	}

	current := s.GetData(trade.ProductID())
	if current.PerBookQty == nil {
		current = Position{Product: trade.Product, PerBookQty: map[string]int64{}}
	}
	next := current.AddPosition(trade.Book.String(), delta)

	s.Put(next.ProductID(), next)
	s.NotifyAdd(next)
}
