package sweep

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cascade-sim/cascade-sim/sim"
)

func testParams(t *testing.T) sim.Parameters {
	t.Helper()
	p, err := sim.DefaultParameters().WithPopulation(2_000)
	require.NoError(t, err)
	return p
}

func TestSeedRange(t *testing.T) {
	assert.Equal(t, []int64{5, 6, 7}, SeedRange(5, 3))
	assert.Empty(t, SeedRange(5, 0))
}

func TestRun_ResultsIndependentOfWorkerCount(t *testing.T) {
	// GIVEN the same seeds run with one worker and with several
	p := testParams(t)
	seeds := SeedRange(100, 8)

	serial, err := Run(context.Background(), Config{Scenario: sim.ScenarioB, Seeds: seeds, Params: p, Workers: 1})
	require.NoError(t, err)
	parallel, err := Run(context.Background(), Config{Scenario: sim.ScenarioB, Seeds: seeds, Params: p, Workers: 4})
	require.NoError(t, err)

	// THEN results are identical and in seed order
	require.Len(t, parallel, len(seeds))
	assert.Equal(t, serial, parallel)
	for i, r := range parallel {
		assert.Equal(t, seeds[i], r.Seed)
	}
}

func TestRun_MatchesDirectSimulation(t *testing.T) {
	p := testParams(t)
	results, err := Run(context.Background(), Config{Scenario: sim.ScenarioA, Seeds: []int64{42}, Params: p})
	require.NoError(t, err)
	assert.Equal(t, sim.Simulate("A", 42, p), results[0])
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Config{Seeds: SeedRange(0, 4), Params: testParams(t), Workers: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_NegativeWorkers(t *testing.T) {
	_, err := Run(context.Background(), Config{Seeds: SeedRange(0, 1), Params: testParams(t), Workers: -1})
	assert.Error(t, err)
}

func TestSummarize_KnownValues(t *testing.T) {
	// GIVEN two hand-built results
	mk := func(hosp int, sepsis []bool) *sim.Result {
		return &sim.Result{
			Sepsis:   sepsis,
			Tested:   sim.TierCounts{sim.TierBirthRF: 0, sim.TierHospPOC: hosp, sim.TierPHCPOC: 0, sim.TierCommPOC: 0},
			Detected: sim.TierCounts{sim.TierBirthRF: 0, sim.TierHospPOC: hosp, sim.TierPHCPOC: 0, sim.TierCommPOC: 0},
		}
	}
	results := []*sim.Result{
		mk(2, []bool{true, false, false, false}),
		mk(4, []bool{true, true, false, false}),
	}

	// WHEN summarized
	s := Summarize(sim.ScenarioA, results)

	// THEN means and sample standard deviations match
	assert.Equal(t, 2, s.Replicates)
	assert.InDelta(t, 0.375, s.SepsisRate.Mean, 1e-12)
	assert.InDelta(t, 3.0, s.Tiers[sim.TierHospPOC].Tested.Mean, 1e-12)
	assert.InDelta(t, 1.4142135623730951, s.Tiers[sim.TierHospPOC].Tested.StdDev, 1e-12)
	assert.Equal(t, Moments{}, s.Tiers[sim.TierBirthRF].Detected)
}

func TestSummarize_SingleAndEmpty(t *testing.T) {
	empty := Summarize(sim.ScenarioA, nil)
	assert.Equal(t, 0, empty.Replicates)
	assert.Empty(t, empty.Tiers)

	p := testParams(t)
	r := sim.Simulate("B", 1, p)
	one := Summarize(sim.ScenarioB, []*sim.Result{r})
	assert.Equal(t, float64(r.Tested[sim.TierBirthRF]), one.Tiers[sim.TierBirthRF].Tested.Mean)
	assert.Zero(t, one.Tiers[sim.TierBirthRF].Tested.StdDev)
}
