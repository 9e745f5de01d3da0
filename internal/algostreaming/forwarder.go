package algostreaming

import (
	"github.com/jwang-trading/bondpipeline/internal/soa"
	"github.com/jwang-trading/bondpipeline/internal/streaming"
)

// Forwarder is StreamingService's passive-forwarder role (spec §4.5): it
// implements soa.ServiceListener[AlgoStream], unwraps the inner PriceStream
// on every AlgoStream event, and upserts it into the bound StreamingService.
type Forwarder struct {
	soa.BaseListener[AlgoStream]
	target *streaming.Service
}

// NewForwarder binds a Forwarder to the StreamingService it feeds.
func NewForwarder(target *streaming.Service) *Forwarder {
	return &Forwarder{target: target}
}

// ProcessAdd unwraps algo.Stream and upserts it into the target service.
func (f *Forwarder) ProcessAdd(algo AlgoStream) {
	f.target.OnMessage(algo.Stream)
}
