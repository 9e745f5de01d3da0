package tradebooking

import "github.com/jwang-trading/bondpipeline/internal/soa"

// Service stores trades keyed by tradeId and fans out to whatever listeners
// are registered (PositionService, in the driver's wiring).
type Service struct {
	soa.Store[string, Trade]
}

// NewService returns an empty TradeBookingService.
func NewService() *Service {
	return &Service{Store: soa.NewStore[string, Trade]()}
}

// OnMessage upserts t by tradeId and notifies listeners.
func (s *Service) OnMessage(t Trade) {
	s.Put(t.TradeID, t)
	s.NotifyAdd(t)
}
