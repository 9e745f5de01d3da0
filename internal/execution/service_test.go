package execution

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/jwang-trading/bondpipeline/internal/product"
	"github.com/jwang-trading/bondpipeline/internal/side"
)

type recordingListener struct {
	got []ExecutionOrder
}

func (r *recordingListener) ProcessAdd(o ExecutionOrder)  { r.got = append(r.got, o) }
func (r *recordingListener) ProcessRemove(ExecutionOrder) {}
func (r *recordingListener) ProcessUpdate(ExecutionOrder) {}

func TestOnMessageUpsertsByProductIDAndNotifies(t *testing.T) {
	bond, ok := product.Lookup("91282CAX9")
	if !ok {
		t.Fatal("test bond not found")
	}

	svc := NewService()
	listener := &recordingListener{}
	svc.AddListener(listener)

	order := ExecutionOrder{
		Product:    bond,
		Side:       side.Offer,
		OrderID:    "o1",
		OrderType:  Market,
		Price:      decimal.RequireFromString("100"),
		VisibleQty: 1_000_000,
		HiddenQty:  0,
	}
	svc.OnMessage(order)

	if len(listener.got) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(listener.got))
	}
	if got := svc.GetData(bond.ProductID()); got.OrderID != "o1" {
		t.Errorf("GetData returned %+v, want OrderID o1", got)
	}

	replacement := order
	replacement.OrderID = "o2"
	svc.OnMessage(replacement)

	if len(listener.got) != 2 {
		t.Fatalf("expected 2 notifications after second message, got %d", len(listener.got))
	}
	if got := svc.GetData(bond.ProductID()); got.OrderID != "o2" {
		t.Errorf("second OnMessage should replace the stored order, got %+v", got)
	}
}

func TestOrderTypeString(t *testing.T) {
	cases := map[OrderType]string{
		FOK:           "FOK",
		IOC:           "IOC",
		Market:        "MARKET",
		Limit:         "LIMIT",
		Stop:          "STOP",
		OrderType(99): "UNKNOWN",
	}
	for ot, want := range cases {
		if got := ot.String(); got != want {
			t.Errorf("OrderType(%d).String() = %q, want %q", ot, got, want)
		}
	}
}
