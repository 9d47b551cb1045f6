// Package testutil provides shared test helpers for the cascade simulator.
// It holds count and tolerance helpers used across sim/ and its subpackages.
package testutil

import (
	"math"
	"testing"
)

// CountTrue returns how many entries of flags are set.
func CountTrue(flags []bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

// AssertProportion checks count/total against want within an absolute tolerance.
// A zero total is reported as a failure, not a division by zero.
func AssertProportion(t *testing.T, name string, count, total int, want, absTol float64) {
	t.Helper()
	if total == 0 {
		t.Errorf("%s: empty sample", name)
		return
	}
	got := float64(count) / float64(total)
	if math.Abs(got-want) > absTol {
		t.Errorf("%s: proportion %.4f, want %.4f ± %v", name, got, want, absTol)
	}
}
