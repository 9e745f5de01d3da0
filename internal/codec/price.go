// Package codec implements the US-Treasury fractional-32nds price format
// (xxx-yyz) used at every wire boundary in the pipeline: input file parsing
// and journal/GUI record rendering. Domain code carries decimal.Decimal
// everywhere else; this is the only place that string format is touched.
//
// Grounded on original_source/tradingsystem/my functions.hpp's
// GetPrice_d2s (encode direction); decode is its inverse, not present in the
// original, needed here because input files carry the same xxx-yyz strings.
package codec

import (
	"regexp"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jwang-trading/bondpipeline/internal/pipelineerr"
)

var (
	thirtyTwo   = decimal.NewFromInt(32)
	twoFiftySix = decimal.NewFromInt(256)
	eight       = decimal.NewFromInt(8)
)

var priceFormat = regexp.MustCompile(`^(\d{1,3})-(\d{2})([0-9+])$`)

// Encode renders r (whole points plus a fraction) as "xxx-yyz". r must be
// non-negative; bond prices never go negative in this system.
func Encode(r decimal.Decimal) (string, error) {
	if r.IsNegative() {
		return "", pipelineerr.Parsef("cannot encode negative price %s", r.String())
	}

	whole := r.Truncate(0)
	scaled32 := r.Sub(whole).Mul(thirtyTwo) // 32 * (r - whole)
	frac32Dec := scaled32.Truncate(0)
	frac32 := int(frac32Dec.IntPart())
	if frac32 < 0 || frac32 > 31 {
		return "", pipelineerr.Invariantf("frac32 %d out of range for price %s", frac32, r.String())
	}

	frac256Dec := scaled32.Sub(frac32Dec).Mul(eight).Truncate(0)
	frac256 := int(frac256Dec.IntPart())
	if frac256 < 0 || frac256 > 7 {
		return "", pipelineerr.Invariantf("frac256 %d out of range for price %s", frac256, r.String())
	}

	tick := strconv.Itoa(frac256)
	if frac256 == 4 {
		tick = "+"
	}
	return whole.String() + "-" + twoDigit(frac32) + tick, nil
}

// Decode parses "xxx-yyz" back into a decimal. It round-trips any value
// originally produced by Encode. Malformed input returns a ParseError.
func Decode(s string) (decimal.Decimal, error) {
	m := priceFormat.FindStringSubmatch(s)
	if m == nil {
		return decimal.Zero, pipelineerr.Parsef("malformed fractional price %q", s)
	}

	whole, err := strconv.Atoi(m[1])
	if err != nil {
		return decimal.Zero, pipelineerr.Parsef("malformed whole points in %q: %v", s, err)
	}
	frac32, err := strconv.Atoi(m[2])
	if err != nil || frac32 > 31 {
		return decimal.Zero, pipelineerr.Parsef("malformed 32nds in %q", s)
	}

	var frac256 int
	if m[3] == "+" {
		frac256 = 4
	} else {
		frac256, err = strconv.Atoi(m[3])
		if err != nil || frac256 > 7 {
			return decimal.Zero, pipelineerr.Parsef("malformed 256ths in %q", s)
		}
	}

	value := decimal.NewFromInt(int64(whole)).
		Add(decimal.NewFromInt(int64(frac32)).Div(thirtyTwo)).
		Add(decimal.NewFromInt(int64(frac256)).Div(twoFiftySix))
	return value, nil
}

func twoDigit(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
