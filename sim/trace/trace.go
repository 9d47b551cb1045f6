// Package trace records per-individual outcomes of a cohort simulation for
// inspection and export. It has no dependency on sim; records hold plain data.
package trace

// TraceLevel controls the verbosity of cohort tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing.
	TraceLevelNone TraceLevel = "none"
	// TraceLevelSeptic records only sepsis-positive individuals.
	TraceLevelSeptic TraceLevel = "septic"
	// TraceLevelIndividuals records every individual.
	TraceLevelIndividuals TraceLevel = "individuals"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:        true,
	TraceLevelSeptic:      true,
	TraceLevelIndividuals: true,
	"":                    true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// Enabled reports whether any records should be collected.
func (c TraceConfig) Enabled() bool {
	return c.Level == TraceLevelSeptic || c.Level == TraceLevelIndividuals
}

// Wants reports whether an individual with the given sepsis status is recorded.
func (c TraceConfig) Wants(hasSepsis bool) bool {
	switch c.Level {
	case TraceLevelIndividuals:
		return true
	case TraceLevelSeptic:
		return hasSepsis
	}
	return false
}

// CohortTrace collects individual records from one simulation run.
type CohortTrace struct {
	Config   TraceConfig
	Scenario string
	Seed     int64
	Records  []IndividualRecord
}

// NewCohortTrace creates a CohortTrace ready for recording.
func NewCohortTrace(config TraceConfig, scenario string, seed int64) *CohortTrace {
	return &CohortTrace{
		Config:   config,
		Scenario: scenario,
		Seed:     seed,
		Records:  make([]IndividualRecord, 0),
	}
}

// Record appends an individual record.
func (ct *CohortTrace) Record(record IndividualRecord) {
	ct.Records = append(ct.Records, record)
}
