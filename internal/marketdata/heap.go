package marketdata

import "container/heap"

// priceHeap is a min-heap of Order by price, adapted from the teacher's
// orderHeap/askHeap shape (container/heap.Interface over a price-ordered
// slice) and reused here to produce AggregateDepth's ascending-by-price
// levels instead of hand-rolling a sort.
type priceHeap []Order

func (h priceHeap) Len() int            { return len(h) }
func (h priceHeap) Less(i, j int) bool  { return h[i].Price.LessThan(h[j].Price) }
func (h priceHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *priceHeap) Push(x interface{}) { *h = append(*h, x.(Order)) }
func (h *priceHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// ascendingByPrice drains a min-heap built from orders, returning them
// sorted by ascending price.
func ascendingByPrice(orders []Order) []Order {
	h := make(priceHeap, len(orders))
	copy(h, orders)
	heap.Init(&h)

	out := make([]Order, 0, len(orders))
	for h.Len() > 0 {
		out = append(out, heap.Pop(&h).(Order))
	}
	return out
}
