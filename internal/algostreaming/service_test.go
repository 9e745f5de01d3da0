package algostreaming

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/jwang-trading/bondpipeline/internal/pricing"
	"github.com/jwang-trading/bondpipeline/internal/product"
	"github.com/jwang-trading/bondpipeline/internal/streaming"
)

type recordingListener struct {
	got []AlgoStream
}

func (r *recordingListener) ProcessAdd(a AlgoStream)  { r.got = append(r.got, a) }
func (r *recordingListener) ProcessRemove(AlgoStream) {}
func (r *recordingListener) ProcessUpdate(AlgoStream) {}

func TestProcessAddCentersOnMidAndTogglesVisibleQty(t *testing.T) {
	bond, ok := product.Lookup("91282CAX9")
	if !ok {
		t.Fatal("test bond not found")
	}
	price := pricing.NewPrice(bond, decimal.RequireFromString("99.5"), decimal.RequireFromString("99.53125"))
	if !price.Mid.Equal(decimal.RequireFromString("99.515625")) {
		t.Fatalf("unexpected mid %s", price.Mid)
	}

	svc := NewService()
	listener := &recordingListener{}
	svc.AddListener(listener)

	svc.ProcessAdd(price)
	svc.ProcessAdd(price)

	if len(listener.got) != 2 {
		t.Fatalf("expected 2 emissions, got %d", len(listener.got))
	}

	first, second := listener.got[0].Stream, listener.got[1].Stream
	if !first.BidOrder.Price.Equal(decimal.RequireFromString("99.5")) {
		t.Errorf("first bid = %s, want 99.5", first.BidOrder.Price)
	}
	if !first.OfferOrder.Price.Equal(decimal.RequireFromString("99.53125")) {
		t.Errorf("first offer = %s, want 99.53125", first.OfferOrder.Price)
	}
	if first.BidOrder.VisibleQty != 10_000_000 || first.BidOrder.HiddenQty != 20_000_000 {
		t.Errorf("first visible/hidden = %d/%d, want 10000000/20000000", first.BidOrder.VisibleQty, first.BidOrder.HiddenQty)
	}
	if second.BidOrder.VisibleQty != 2_000_000 || second.BidOrder.HiddenQty != 4_000_000 {
		t.Errorf("second visible/hidden = %d/%d, want 2000000/4000000", second.BidOrder.VisibleQty, second.BidOrder.HiddenQty)
	}
}

func TestForwarderUnwrapsToStreamingService(t *testing.T) {
	bond, _ := product.Lookup("91282CAX9")
	price := pricing.NewPrice(bond, decimal.RequireFromString("99.5"), decimal.RequireFromString("99.53125"))

	algoSvc := NewService()
	streamSvc := streaming.NewService()
	algoSvc.AddListener(NewForwarder(streamSvc))

	algoSvc.ProcessAdd(price)

	got := streamSvc.GetData(bond.ProductID())
	if !got.BidOrder.Price.Equal(decimal.RequireFromString("99.5")) {
		t.Errorf("forwarded bid = %s, want 99.5", got.BidOrder.Price)
	}
}
