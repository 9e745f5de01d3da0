package algoexecution

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jwang-trading/bondpipeline/internal/clock"
	"github.com/jwang-trading/bondpipeline/internal/execution"
	"github.com/jwang-trading/bondpipeline/internal/marketdata"
	"github.com/jwang-trading/bondpipeline/internal/product"
	"github.com/jwang-trading/bondpipeline/internal/side"
)

func tightBook(t *testing.T) marketdata.OrderBook {
	t.Helper()
	bond, ok := product.Lookup("91282CAX9")
	if !ok {
		t.Fatal("test bond not found")
	}
	return marketdata.OrderBook{
		Product: bond,
		BidStack: []marketdata.Order{
			{Price: decimal.RequireFromString("100"), Quantity: 1_000_000, Side: side.Bid},
		},
		OfferStack: []marketdata.Order{
			{Price: decimal.RequireFromString("100.0078125"), Quantity: 1_000_000, Side: side.Offer},
		},
	}
}

func TestProcessAddAggressesOnlyAtMinimumTick(t *testing.T) {
	fixed := clock.FixedClock{At: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
	svc := NewService(fixed)
	execSvc := execution.NewService()
	svc.AddListener(NewForwarder(execSvc))

	svc.ProcessAdd(tightBook(t))

	order := execSvc.GetData("91282CAX9")
	if order.Side != side.Offer {
		t.Fatalf("first aggress side = %s, want OFFER (counter starts even)", order.Side)
	}
	if !order.Price.Equal(decimal.RequireFromString("100.0078125")) {
		t.Errorf("aggress price = %s, want 100.0078125", order.Price)
	}
	if order.OrderType != execution.Market || order.IsChild || order.ParentOrderID != "" {
		t.Errorf("unexpected order shape: %+v", order)
	}

	svc.ProcessAdd(tightBook(t))
	order = execSvc.GetData("91282CAX9")
	if order.Side != side.Bid {
		t.Fatalf("second aggress side = %s, want BID", order.Side)
	}
}

func TestProcessAddSkipsWideSpread(t *testing.T) {
	svc := NewService(clock.SystemClock{})
	execSvc := execution.NewService()
	svc.AddListener(NewForwarder(execSvc))

	book := tightBook(t)
	book.OfferStack[0].Price = decimal.RequireFromString("100.5")

	svc.ProcessAdd(book)

	if execSvc.Has("91282CAX9") {
		t.Error("wide-spread book should not trigger an aggress")
	}
}
