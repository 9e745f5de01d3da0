package streaming

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/jwang-trading/bondpipeline/internal/product"
	"github.com/jwang-trading/bondpipeline/internal/side"
)

type recordingListener struct {
	got []PriceStream
}

func (r *recordingListener) ProcessAdd(p PriceStream)  { r.got = append(r.got, p) }
func (r *recordingListener) ProcessRemove(PriceStream) {}
func (r *recordingListener) ProcessUpdate(PriceStream) {}

func TestOnMessageUpsertsAndNotifies(t *testing.T) {
	bond, ok := product.Lookup("91282CAX9")
	if !ok {
		t.Fatal("test bond not found")
	}
	stream := PriceStream{
		Product:  bond,
		BidOrder: PriceStreamOrder{Price: decimal.RequireFromString("99.5"), VisibleQty: 10_000_000, HiddenQty: 20_000_000, Side: side.Bid},
		OfferOrder: PriceStreamOrder{
			Price: decimal.RequireFromString("99.53125"), VisibleQty: 10_000_000, HiddenQty: 20_000_000, Side: side.Offer,
		},
	}

	svc := NewService()
	listener := &recordingListener{}
	svc.AddListener(listener)

	svc.OnMessage(stream)

	if len(listener.got) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(listener.got))
	}
	if got := svc.GetData(bond.ProductID()); !got.BidOrder.Price.Equal(stream.BidOrder.Price) {
		t.Errorf("stored bid = %s, want %s", got.BidOrder.Price, stream.BidOrder.Price)
	}
}
