// Package algoexecution implements AlgoExecutionService (spec §4.7): on
// each OrderBook update it decides whether the current best bid/offer spread
// is tight enough to aggress, and if so emits a MARKET ExecutionOrder.
package algoexecution

import "github.com/jwang-trading/bondpipeline/internal/execution"

// AlgoExecution wraps the ExecutionOrder the algo decided to send, or the
// zero value when a book update did not trigger an aggress.
type AlgoExecution struct {
	Order     execution.ExecutionOrder
	Triggered bool
}

// ProductID is the identity key AlgoExecution is stored under.
func (a AlgoExecution) ProductID() string { return a.Order.ProductID() }
