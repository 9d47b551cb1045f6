package sim

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExampleParams_Defaults verifies that cascade-defaults.yaml matches
// the built-in parameters.
func TestExampleParams_Defaults(t *testing.T) {
	// GIVEN the cascade-defaults.yaml example
	p, err := LoadParameters(filepath.Join("..", "examples", "cascade-defaults.yaml"))
	require.NoError(t, err, "failed to load cascade-defaults.yaml")

	// THEN it is identical to DefaultParameterSpec
	assert.Equal(t, DefaultParameterSpec(), p.Spec())
}

// TestExampleParams_EarlyDischarge verifies that early-discharge.yaml loads
// and leaves no case caught in a facility after 12 hours.
func TestExampleParams_EarlyDischarge(t *testing.T) {
	p, err := LoadParameters(filepath.Join("..", "examples", "early-discharge.yaml"))
	require.NoError(t, err, "failed to load early-discharge.yaml")

	want := ExpectedSiteProportions(p)
	base := ExpectedSiteProportions(DefaultParameters())

	// THEN fewer cases are first seen as inpatients than with the defaults
	assert.Less(t, want[SiteHospital], base[SiteHospital])
	assert.Less(t, want[SiteClinicInpatient], base[SiteClinicInpatient])

	// THEN onset CDF at 12h = 0.25 bounds in-facility capture
	assert.InDelta(t, 0.15*0.35*0.25, want[SiteHospital], 1e-12)
	assert.InDelta(t, 0.15*0.45*0.25, want[SiteClinicInpatient], 1e-12)
}
