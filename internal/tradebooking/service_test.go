package tradebooking

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jwang-trading/bondpipeline/internal/execution"
	"github.com/jwang-trading/bondpipeline/internal/product"
	"github.com/jwang-trading/bondpipeline/internal/side"
)

type recordingListener struct {
	got []Trade
}

func (r *recordingListener) ProcessAdd(t Trade)  { r.got = append(r.got, t) }
func (r *recordingListener) ProcessRemove(Trade) {}
func (r *recordingListener) ProcessUpdate(Trade) {}

func TestConnectorBooksTradeFileRows(t *testing.T) {
	svc := NewService()
	listener := &recordingListener{}
	svc.AddListener(listener)

	conn := NewConnector(svc, zerolog.Nop())
	input := "91282CAX9 T1 99-160 TRSY1 1000000 BUY\n"
	if err := conn.Subscribe(strings.NewReader(input)); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	if len(listener.got) != 1 {
		t.Fatalf("expected 1 trade, got %d", len(listener.got))
	}
	trade := listener.got[0]
	if trade.Book != TRSY1 || trade.Side != side.Buy || trade.Quantity != 1_000_000 {
		t.Errorf("unexpected trade: %+v", trade)
	}
}

func TestBackEdgeSynthesizesTradeAndRotatesBooks(t *testing.T) {
	bond, ok := product.Lookup("91282CAX9")
	if !ok {
		t.Fatal("test bond not found")
	}

	svc := NewService()
	listener := &recordingListener{}
	svc.AddListener(listener)

	edge := NewBackEdge(svc)

	offerOrder := execution.ExecutionOrder{
		Product: bond, Side: side.Offer, OrderID: "o1",
		Price: decimal.RequireFromString("100"), VisibleQty: 1_000_000, HiddenQty: 0,
	}
	bidOrder := execution.ExecutionOrder{
		Product: bond, Side: side.Bid, OrderID: "o2",
		Price: decimal.RequireFromString("99.5"), VisibleQty: 1_000_000, HiddenQty: 0,
	}

	edge.ProcessAdd(offerOrder)
	edge.ProcessAdd(bidOrder)

	if len(listener.got) != 2 {
		t.Fatalf("expected 2 trades, got %d", len(listener.got))
	}
	if listener.got[0].Side != side.Buy {
		t.Errorf("lifting the offer should book a BUY, got %s", listener.got[0].Side)
	}
	if listener.got[1].Side != side.Sell {
		t.Errorf("hitting the bid should book a SELL, got %s", listener.got[1].Side)
	}
	if listener.got[0].Book != TRSY1 || listener.got[1].Book != TRSY2 {
		t.Errorf("expected round-robin TRSY1 then TRSY2, got %s then %s", listener.got[0].Book, listener.got[1].Book)
	}
}
