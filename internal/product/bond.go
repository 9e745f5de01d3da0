// Package product defines the Bond product type and the compile-time
// reference-data tables (CUSIP lookup, PV01-per-unit) every domain service
// keys its state on. Bond reference data is an out-of-scope external
// collaborator per the system's scope — this package stands in for it with
// the same fixed CUSIP set original_source/tradingsystem used.
package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// IDType distinguishes how a bond's identifier is issued.
type IDType int

const (
	// CUSIP is the 9-character North American security identifier; the only
	// identifier type this system's reference table carries.
	CUSIP IDType = iota
	// ISIN is carried for completeness with the original product hierarchy
	// but no bond in the reference table uses it.
	ISIN
)

func (t IDType) String() string {
	if t == ISIN {
		return "ISIN"
	}
	return "CUSIP"
}

// Bond is the one product type this system trades. Every domain entity is
// parameterized by a product exposing ProductID(); Bond is that instantiation.
type Bond struct {
	ID           string
	IDType       IDType
	Ticker       string
	Coupon       decimal.Decimal
	MaturityDate time.Time
}

// ProductID returns the bond's identifying key (its CUSIP).
func (b Bond) ProductID() string { return b.ID }

// Product is the minimal contract every domain generic type requires of P.
type Product interface {
	ProductID() string
}

var maturity = func(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// table mirrors GetBond in original_source/tradingsystem/my functions.hpp.
var table = map[string]Bond{
	"91282CAX9": {ID: "91282CAX9", IDType: CUSIP, Ticker: "US2Y", Coupon: decimal.NewFromFloat(0.125), MaturityDate: maturity(2022, time.November, 30)},
	"91282CBA8": {ID: "91282CBA8", IDType: CUSIP, Ticker: "US3Y", Coupon: decimal.NewFromFloat(0.125), MaturityDate: maturity(2023, time.December, 15)},
	"91282CAZ4": {ID: "91282CAZ4", IDType: CUSIP, Ticker: "US5Y", Coupon: decimal.NewFromFloat(0.375), MaturityDate: maturity(2025, time.November, 30)},
	"91282CAY7": {ID: "91282CAY7", IDType: CUSIP, Ticker: "US7Y", Coupon: decimal.NewFromFloat(0.625), MaturityDate: maturity(2027, time.November, 30)},
	"91282CAV3": {ID: "91282CAV3", IDType: CUSIP, Ticker: "US10Y", Coupon: decimal.NewFromFloat(0.875), MaturityDate: maturity(2030, time.December, 15)},
	"912810ST6": {ID: "912810ST6", IDType: CUSIP, Ticker: "US20Y", Coupon: decimal.NewFromFloat(1.375), MaturityDate: maturity(2040, time.November, 30)},
	"912810SS8": {ID: "912810SS8", IDType: CUSIP, Ticker: "US30Y", Coupon: decimal.NewFromFloat(1.625), MaturityDate: maturity(2050, time.December, 15)},
}

// pv01 mirrors GetPV01 in the same file: dollar PV01 per unit face, by CUSIP.
var pv01 = map[string]decimal.Decimal{
	"91282CAX9": decimal.RequireFromString("1.998126079"),
	"91282CBA8": decimal.RequireFromString("2.995311964"),
	"91282CAZ4": decimal.RequireFromString("4.958072114"),
	"91282CAY7": decimal.RequireFromString("6.859835619"),
	"91282CAV3": decimal.RequireFromString("9.594924967"),
	"912810ST6": decimal.RequireFromString("17.52797647"),
	"912810SS8": decimal.RequireFromString("23.82649737"),
}

// Lookup returns the Bond for cusip, or false if it is not in the reference
// table (UnknownProduct, per the error taxonomy — callers skip the record).
func Lookup(cusip string) (Bond, bool) {
	b, ok := table[cusip]
	return b, ok
}

// PV01PerUnit returns the dollar PV01 per unit face for cusip, or false if
// the product is not in the reference table.
func PV01PerUnit(cusip string) (decimal.Decimal, bool) {
	v, ok := pv01[cusip]
	return v, ok
}
