// Package position implements PositionService (spec §4.10): it maintains a
// per-book signed position for each product and fans out to RiskService and
// HistPosition on every trade.
package position

import "github.com/jwang-trading/bondpipeline/internal/product"

// Position is the current signed holding of a product, broken out by book.
type Position struct {
	Product      product.Bond
	PerBookQty   map[string]int64
}

// ProductID is the identity key Position is stored under.
func (p Position) ProductID() string { return p.Product.ProductID() }

// AggregateQuantity sums all per-book signed quantities.
func (p Position) AggregateQuantity() int64 {
	var total int64
	for _, qty := range p.PerBookQty {
		total += qty
	}
	return total
}

// AddPosition returns a copy of p with book's quantity adjusted by delta.
// Position is treated as immutable outside the service that owns it.
func (p Position) AddPosition(book string, delta int64) Position {
	next := Position{Product: p.Product, PerBookQty: make(map[string]int64, len(p.PerBookQty)+1)}
	for b, qty := range p.PerBookQty {
		next.PerBookQty[b] = qty
	}
	next.PerBookQty[book] += delta
	return next
}
