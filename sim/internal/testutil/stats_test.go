package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountTrue(t *testing.T) {
	assert.Equal(t, 0, CountTrue(nil))
	assert.Equal(t, 2, CountTrue([]bool{true, false, true}))
}

func TestAssertProportion_WithinTolerance(t *testing.T) {
	// 148/1000 is within 0.005 of 0.15
	AssertProportion(t, "sepsis", 148, 1000, 0.15, 0.005)
	AssertFloat64Equal(t, "exact", 0.15, 0.15, 1e-12)
	AssertFloat64Equal(t, "zeros", 0, 0, 1e-12)
}
