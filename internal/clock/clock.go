// Package clock is the pipeline's sole wall-clock collaborator. Every other
// package that needs "now" goes through here so tests can freeze time instead
// of reimplementing system_clock shims per package.
package clock

import (
	"fmt"
	"time"
)

// Clock produces the current instant. The zero value of SystemClock is ready
// to use; tests substitute a FixedClock to make timestamp-dependent output
// (order ids, journal records, GUI throttling) deterministic.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant. Useful in tests that assert on
// rendered timestamps or on GUI-throttle boundaries.
type FixedClock struct {
	At time.Time
}

// Now returns the fixed instant.
func (f FixedClock) Now() time.Time { return f.At }

// Default is the system clock used outside of tests.
var Default Clock = SystemClock{}

// Timestamp renders t in the journal format the original system used:
// YYYYMMDD-HH:MM:SS:mmm, local time, zero-padded to millisecond precision.
// time.Format's fractional-second verbs only attach after a literal "." or
// ",", so the ":mmm" suffix here is built by hand rather than via layout.
func Timestamp(t time.Time) string {
	return fmt.Sprintf("%s:%03d", t.Format("20060102-15:04:05"), t.Nanosecond()/1e6)
}
