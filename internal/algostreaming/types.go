// Package algostreaming implements AlgoStreamingService (spec §4.4): on each
// price event it emits a two-sided AlgoStream centered on the mid, with
// visibleQty alternating between 10,000,000 and 2,000,000.
package algostreaming

import "github.com/jwang-trading/bondpipeline/internal/streaming"

// AlgoStream wraps the PriceStream the algo decided to publish.
type AlgoStream struct {
	Stream streaming.PriceStream
}

// ProductID is the identity key AlgoStream is stored under.
func (a AlgoStream) ProductID() string { return a.Stream.ProductID() }
