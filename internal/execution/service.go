package execution

import "github.com/jwang-trading/bondpipeline/internal/soa"

// Service stores the latest ExecutionOrder per productId and fans out to its
// listeners (TradeBooking's back-edge, HistExecution). It has no connector:
// it is driven by AlgoExecutionService handing it orders via an adapter.
type Service struct {
	soa.Store[string, ExecutionOrder]
}

// NewService returns an empty ExecutionService.
func NewService() *Service {
	return &Service{Store: soa.NewStore[string, ExecutionOrder]()}
}

// OnMessage upserts order by productId and notifies listeners.
func (s *Service) OnMessage(order ExecutionOrder) {
	s.Put(order.ProductID(), order)
	s.NotifyAdd(order)
}
