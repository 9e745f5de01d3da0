package risk

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/jwang-trading/bondpipeline/internal/position"
	"github.com/jwang-trading/bondpipeline/internal/product"
)

func TestProcessAddLooksUpPV01AndAggregateQuantity(t *testing.T) {
	bond, ok := product.Lookup("91282CAX9")
	if !ok {
		t.Fatal("test bond not found")
	}

	svc := NewService()
	svc.ProcessAdd(position.Position{Product: bond, PerBookQty: map[string]int64{"TRSY1": 1_000_000, "TRSY2": -400_000}})

	got := svc.GetData(bond.ProductID())
	if got.Quantity != 600_000 {
		t.Errorf("quantity = %d, want 600000", got.Quantity)
	}
	want, _ := product.PV01PerUnit(bond.ProductID())
	if !got.Value.Equal(want) {
		t.Errorf("pv01 value = %s, want %s", got.Value, want)
	}
}

func TestBucketedRiskSumsMagnitudeAndSignedQuantity(t *testing.T) {
	bondA, _ := product.Lookup("91282CAX9")
	bondB, _ := product.Lookup("91282CBA8")

	svc := NewService()
	svc.ProcessAdd(position.Position{Product: bondA, PerBookQty: map[string]int64{"TRSY1": 1_000_000}})
	svc.ProcessAdd(position.Position{Product: bondB, PerBookQty: map[string]int64{"TRSY1": -500_000}})

	sector := BucketedSector{Name: "BELLY", Products: []product.Bond{bondA, bondB}}
	bucketed := svc.BucketedRisk(sector)

	if bucketed.Quantity != 500_000 {
		t.Errorf("bucketed quantity = %d, want 500000 (signed net)", bucketed.Quantity)
	}
	perUnitA, _ := product.PV01PerUnit(bondA.ProductID())
	perUnitB, _ := product.PV01PerUnit(bondB.ProductID())
	want := perUnitA.Mul(decimal.NewFromInt(1_000_000)).Add(perUnitB.Mul(decimal.NewFromInt(500_000)))
	if !bucketed.Value.Equal(want) {
		t.Errorf("bucketed value = %s, want %s (magnitude sum)", bucketed.Value, want)
	}
}
