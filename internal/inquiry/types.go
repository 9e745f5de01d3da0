// Package inquiry implements InquiryService (spec §4.12): a negotiation
// state machine driven by a bidirectional connector — parsing a RECEIVED
// row triggers a synchronous, depth-bounded publish/subscribe loopback that
// settles the inquiry at DONE (or REJECTED) before the next row is read.
package inquiry

import (
	"github.com/shopspring/decimal"

	"github.com/jwang-trading/bondpipeline/internal/product"
	"github.com/jwang-trading/bondpipeline/internal/side"
)

// State is an Inquiry's position in the negotiation state machine.
type State int

const (
	Received State = iota
	Quoted
	Done
	Rejected
	CustomerRejected
)

func (s State) String() string {
	switch s {
	case Received:
		return "RECEIVED"
	case Quoted:
		return "QUOTED"
	case Done:
		return "DONE"
	case Rejected:
		return "REJECTED"
	case CustomerRejected:
		return "CUSTOMER_REJECTED"
	default:
		return "UNKNOWN"
	}
}

// ParseState parses one of the five wire-format state names.
func ParseState(s string) (State, bool) {
	switch s {
	case "RECEIVED":
		return Received, true
	case "QUOTED":
		return Quoted, true
	case "DONE":
		return Done, true
	case "REJECTED":
		return Rejected, true
	case "CUSTOMER_REJECTED":
		return CustomerRejected, true
	default:
		return 0, false
	}
}

// Terminal reports whether s admits no further transitions.
func (s State) Terminal() bool {
	return s == Done || s == Rejected || s == CustomerRejected
}

// Inquiry is a single customer price negotiation.
type Inquiry struct {
	InquiryID string
	Product   product.Bond
	Side      side.TradeSide
	Quantity  int64
	Price     decimal.Decimal
	State     State
}

// ProductID lets Inquiry satisfy the product.Product-keyed conventions used
// elsewhere, even though InquiryService itself keys its store by InquiryID.
func (i Inquiry) ProductID() string { return i.Product.ProductID() }
