// Package sim simulates the care-seeking cascade of newborns with suspected
// sepsis and counts how many cases each diagnostic tier tests and detects.
//
// # Reading Guide
//
// Start with simulator.go: SimulateScenario runs the pipeline stages in order.
//   - population.go: birth setting and sepsis status
//   - screening.go: birth risk-factor screen (scenario B only)
//   - discharge.go: facility discharge time
//   - onset.go: piecewise-uniform symptom onset time
//   - assessment.go: first assessment site
//   - tiers.go: tested/detected counts per tier
//
// Parameters (config.go) are validated once by NewParameters and are
// immutable afterwards. Randomness comes from a PartitionedRNG (rng.go) with
// one stream per stage, so a seed fully determines the output.
//
// Sub-packages:
//   - sim/sampling/: categorical, discrete, segment and Bernoulli draws
//   - sim/trace/: per-individual trace records
//   - sim/sweep/: parallel multi-seed replicate runs
//   - sim/report/: per-1000 tables and CSV export
package sim
