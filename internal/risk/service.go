package risk

import (
	"github.com/shopspring/decimal"

	"github.com/jwang-trading/bondpipeline/internal/position"
	"github.com/jwang-trading/bondpipeline/internal/product"
	"github.com/jwang-trading/bondpipeline/internal/soa"
)

// Service stores the latest PV01 per productId and fans out to HistRisk. It
// implements soa.ServiceListener[position.Position] so it can be wired
// directly as PositionService's listener.
type Service struct {
	soa.Store[string, PV01]
	soa.BaseListener[position.Position]
}

// NewService returns an empty RiskService.
func NewService() *Service {
	return &Service{Store: soa.NewStore[string, PV01]()}
}

// ProcessAdd recomputes PV01 exposure for pos.Product from the external
// PV01-per-unit table and the position's current aggregate quantity.
func (s *Service) ProcessAdd(pos position.Position) {
	perUnit, ok := product.PV01PerUnit(pos.ProductID())
	if !ok {
		return
	}

	pv01 := PV01{
		ProductKey: pos.ProductID(),
		Value:      perUnit,
		Quantity:   pos.AggregateQuantity(),
	}
	s.Put(pv01.ProductID(), pv01)
	s.NotifyAdd(pv01)
}

// BucketedRisk rolls several products' PV01 exposure into a synthetic
// dollar-risk view: pv01 is Σ pv01PerUnit·|quantity| (a magnitude, not a
// signed net), quantity is the signed Σ quantity.
func (s *Service) BucketedRisk(sector BucketedSector) PV01 {
	var pv01Sum decimal.Decimal
	var qtySum int64

	for _, p := range sector.Products {
		stored := s.GetData(p.ProductID())
		pv01Sum = pv01Sum.Add(stored.Value.Mul(decimal.NewFromInt(abs(stored.Quantity))))
		qtySum += stored.Quantity
	}

	return PV01{ProductKey: sector.Name, Value: pv01Sum, Quantity: qtySum}
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
