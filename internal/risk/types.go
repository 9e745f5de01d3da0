// Package risk implements RiskService (spec §4.11): it tracks PV01 exposure
// per product from position updates and can roll several products up into a
// bucketed dollar-risk view.
package risk

import (
	"github.com/shopspring/decimal"

	"github.com/jwang-trading/bondpipeline/internal/product"
)

// PV01 is the dollar-risk-per-basis-point exposure of a product. For a
// single product, Value holds pv01-per-unit-face; for a bucketed sector
// (see Service.BucketedRisk) the same field holds the rolled-up dollar
// magnitude instead, per the source's own overloaded treatment.
type PV01 struct {
	ProductKey string
	Value      decimal.Decimal
	Quantity   int64
}

// ProductID is the identity key PV01 is stored under.
func (p PV01) ProductID() string { return p.ProductKey }

// BucketedSector names a synthetic grouping of products for rolled-up risk.
type BucketedSector struct {
	Name     string
	Products []product.Bond
}
