// Package execution implements ExecutionService (spec §4.8): it receives the
// ExecutionOrder that algoexecution.Forwarder extracts from each triggered
// AlgoExecution, upserts it by productId, and fans out to TradeBooking
// (back-edge) and HistExecution.
package execution

import (
	"github.com/shopspring/decimal"

	"github.com/jwang-trading/bondpipeline/internal/product"
	"github.com/jwang-trading/bondpipeline/internal/side"
)

// OrderType enumerates how an ExecutionOrder is meant to work.
type OrderType int

const (
	FOK OrderType = iota
	IOC
	Market
	Limit
	Stop
)

func (t OrderType) String() string {
	switch t {
	case FOK:
		return "FOK"
	case IOC:
		return "IOC"
	case Market:
		return "MARKET"
	case Limit:
		return "LIMIT"
	case Stop:
		return "STOP"
	default:
		return "UNKNOWN"
	}
}

// ExecutionOrder is the order AlgoExecution decided to send to the market.
type ExecutionOrder struct {
	Product       product.Bond
	Side          side.PricingSide
	OrderID       string
	OrderType     OrderType
	Price         decimal.Decimal
	VisibleQty    int64
	HiddenQty     int64
	ParentOrderID string
	IsChild       bool
}

// ProductID is the identity key ExecutionOrder is stored under.
func (e ExecutionOrder) ProductID() string { return e.Product.ProductID() }
