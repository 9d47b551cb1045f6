package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cascade-sim/cascade-sim/sim"
)

func TestNewSummary(t *testing.T) {
	p, err := sim.DefaultParameters().WithPopulation(5_000)
	require.NoError(t, err)
	a := sim.Simulate("A", 42, p)
	b := sim.Simulate("B", 42, p)

	s := NewSummary(42, p, a, b)

	_, err = uuid.Parse(s.RunID)
	assert.NoError(t, err)
	assert.Equal(t, 5_000, s.Population)
	require.Len(t, s.Scenarios, 2)
	assert.Equal(t, "A – no screen", s.Scenarios[0].Label)
	assert.Equal(t, b.Tested, s.Scenarios[1].Tested)
	assert.InDelta(t, 1000*sim.ExpectedSiteProportions(p)[sim.SiteHospital],
		s.Scenarios[0].Sites[sim.SiteHospital].ExpectedPer1000, 1e-9)
	assert.Equal(t, s.Scenarios[0].SepticCount,
		s.Scenarios[0].Tested.Total(sim.TierHospPOC, sim.TierPHCPOC, sim.TierCommPOC))
}

func TestSummary_Write_UsesEnumNames(t *testing.T) {
	p, err := sim.DefaultParameters().WithPopulation(1_000)
	require.NoError(t, err)
	s := NewSummary(1, p, sim.Simulate("B", 1, p))

	var buf bytes.Buffer
	require.NoError(t, s.Write(&buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "=== Cascade Summary ===\n"))
	assert.Contains(t, out, "BIRTH_RF:")
	assert.Contains(t, out, "community_noformal:")
	assert.Contains(t, out, "scenario: B")

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(strings.TrimPrefix(out, "=== Cascade Summary ===\n")), &doc))
	assert.Equal(t, 1_000, doc["population"])
}
