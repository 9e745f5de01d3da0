package pricing

import "github.com/jwang-trading/bondpipeline/internal/soa"

// Service stores the latest Price per productId and fans out to its
// listeners (AlgoStreaming, GUI) on every update. There is no monotonicity
// check on successive quotes — last write wins, per spec §4.3.
type Service struct {
	soa.Store[string, Price]
}

// NewService returns an empty PricingService.
func NewService() *Service {
	return &Service{Store: soa.NewStore[string, Price]()}
}

// OnMessage upserts p by productId and notifies listeners in registration
// order. This is the plain Service<K,V> path — no extra state-machine work.
func (s *Service) OnMessage(p Price) {
	s.Put(p.ProductID(), p)
	s.NotifyAdd(p)
}
