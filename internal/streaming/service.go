package streaming

import "github.com/jwang-trading/bondpipeline/internal/soa"

// Service stores the latest PriceStream per productId and fans out to
// HistStreaming. It has no connector of its own: it is driven purely by
// AlgoStreamingService handing it AlgoStream events to unwrap.
type Service struct {
	soa.Store[string, PriceStream]
}

// NewService returns an empty StreamingService.
func NewService() *Service {
	return &Service{Store: soa.NewStore[string, PriceStream]()}
}

// OnMessage upserts stream by productId and notifies listeners.
func (s *Service) OnMessage(stream PriceStream) {
	s.Put(stream.ProductID(), stream)
	s.NotifyAdd(stream)
}
