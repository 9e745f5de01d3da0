package marketdata

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type recordingListener struct {
	got []OrderBook
}

func (r *recordingListener) ProcessAdd(b OrderBook)  { r.got = append(r.got, b) }
func (r *recordingListener) ProcessRemove(OrderBook) {}
func (r *recordingListener) ProcessUpdate(OrderBook) {}

func depthInput(t *testing.T) string {
	t.Helper()
	var sb strings.Builder
	bids := []string{"99-000", "99-010", "99-010", "98-310", "98-300"}
	offers := []string{"99-020", "99-030", "99-030", "99-040", "99-050"}
	for _, p := range bids {
		sb.WriteString("91282CAX9 " + p + " 1000000 BID\n")
	}
	for _, p := range offers {
		sb.WriteString("91282CAX9 " + p + " 2000000 OFFER\n")
	}
	return sb.String()
}

func TestSubscribeAssemblesBookEveryRun(t *testing.T) {
	svc := NewService(5)
	listener := &recordingListener{}
	svc.AddListener(listener)

	conn := NewConnector(svc, zerolog.Nop())
	if err := conn.Subscribe(strings.NewReader(depthInput(t))); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if len(listener.got) != 1 {
		t.Fatalf("expected exactly 1 OrderBook event, got %d", len(listener.got))
	}
	book := listener.got[0]
	if len(book.BidStack) != 5 || len(book.OfferStack) != 5 {
		t.Fatalf("expected 5+5 raw levels, got %d+%d", len(book.BidStack), len(book.OfferStack))
	}
}

func TestBestBidOffer(t *testing.T) {
	svc := NewService(5)
	conn := NewConnector(svc, zerolog.Nop())
	if err := conn.Subscribe(strings.NewReader(depthInput(t))); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	bo := svc.BestBidOffer("91282CAX9")
	if !bo.BestBid.Price.Equal(decimal.NewFromFloat(99.03125)) {
		t.Errorf("best bid = %s, want 99.03125", bo.BestBid.Price)
	}
	if !bo.BestOffer.Price.Equal(decimal.NewFromFloat(99.0625)) {
		t.Errorf("best offer = %s, want 99.0625", bo.BestOffer.Price)
	}
}

func TestAggregateDepthSumsDuplicatesAscending(t *testing.T) {
	svc := NewService(5)
	conn := NewConnector(svc, zerolog.Nop())
	if err := conn.Subscribe(strings.NewReader(depthInput(t))); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	agg := svc.AggregateDepth("91282CAX9")
	if len(agg.BidStack) != 4 {
		t.Fatalf("expected 4 distinct bid levels after aggregation, got %d", len(agg.BidStack))
	}
	for i := 1; i < len(agg.BidStack); i++ {
		if agg.BidStack[i].Price.LessThan(agg.BidStack[i-1].Price) {
			t.Fatalf("bid stack not ascending: %v", agg.BidStack)
		}
	}
	// 99-010 appears twice at 1,000,000 each -> 2,000,000 aggregated.
	for _, o := range agg.BidStack {
		if o.Price.Equal(decimal.NewFromFloat(99.03125)) {
			if o.Quantity != 2000000 {
				t.Errorf("aggregated quantity = %d, want 2000000", o.Quantity)
			}
		}
	}
}
