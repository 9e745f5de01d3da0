package algoexecution

import (
	"github.com/jwang-trading/bondpipeline/internal/execution"
	"github.com/jwang-trading/bondpipeline/internal/soa"
)

// Forwarder implements soa.ServiceListener[AlgoExecution]. It unwraps the
// inner ExecutionOrder of every triggered AlgoExecution event and upserts it
// into the bound ExecutionService, dropping untriggered (no-aggress) events.
type Forwarder struct {
	soa.BaseListener[AlgoExecution]
	target *execution.Service
}

// NewForwarder binds a Forwarder to the ExecutionService it feeds.
func NewForwarder(target *execution.Service) *Forwarder {
	return &Forwarder{target: target}
}

// ProcessAdd forwards algo.Order to the target service when triggered.
func (f *Forwarder) ProcessAdd(algo AlgoExecution) {
	if !algo.Triggered {
		return
	}
	f.target.OnMessage(algo.Order)
}
