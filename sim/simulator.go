package sim

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cascade-sim/cascade-sim/sim/trace"
)

// Result is the output contract of one simulation call. Index i of Sepsis
// and Sites refers to the same individual.
type Result struct {
	Scenario Scenario
	Seed     int64
	Sepsis   []bool
	Sites    []AssessmentSite
	Tested   TierCounts
	Detected TierCounts
}

// Population returns N.
func (r *Result) Population() int {
	return len(r.Sepsis)
}

// Simulate runs the cascade for the named scenario. The name is matched
// case-insensitively; anything other than "B" runs scenario A.
func Simulate(scenario string, seed int64, p Parameters) *Result {
	s := ParseScenario(scenario)
	if s == ScenarioA && !strings.EqualFold(scenario, "A") {
		logrus.Debugf("scenario %q not recognised; running scenario A (no birth screen)", scenario)
	}
	result, _ := SimulateScenario(s, seed, p)
	return result
}

// SimulateScenario runs the cascade and also returns the full cohort.
//
// Stages run in a fixed order, each drawing only from its own RNG subsystem:
// population, screening (scenario B only), discharge, onset, assessment.
// Within a stage, draws follow index order as documented on each stage.
func SimulateScenario(scenario Scenario, seed int64, p Parameters) (*Result, *Cohort) {
	rng := NewPartitionedRNG(NewSimulationKey(seed))
	n := p.Population()

	c := &Cohort{}
	c.BirthSetting, c.HasSepsis = generatePopulation(p, rng.ForSubsystem(SubsystemPopulation))

	if scenario.Screens() {
		c.Screened, c.RiskFactorPositive = screenAtBirth(p, c.BirthSetting, c.HasSepsis, rng.ForSubsystem(SubsystemScreening))
	} else {
		c.Screened = make([]bool, n)
		c.RiskFactorPositive = make([]bool, n)
	}

	c.Discharge = sampleDischarge(p, c.BirthSetting, rng.ForSubsystem(SubsystemDischarge))
	c.Onset = sampleOnset(p, c.HasSepsis, rng.ForSubsystem(SubsystemOnset))
	c.Site = classifyAssessment(p, c, rng.ForSubsystem(SubsystemAssessment))

	tested, detected := aggregateTiers(scenario, c)

	logrus.Debugf("scenario %s seed %d: %d births, %d septic, tested=%v detected=%v",
		scenario, seed, n, c.SepticCount(), tested, detected)

	return &Result{
		Scenario: scenario,
		Seed:     seed,
		Sepsis:   c.HasSepsis,
		Sites:    c.Site,
		Tested:   tested,
		Detected: detected,
	}, c
}

// RecordCohort converts a cohort into trace records according to config.
// Returns nil when tracing is disabled.
func RecordCohort(c *Cohort, scenario Scenario, seed int64, config trace.TraceConfig) *trace.CohortTrace {
	if !config.Enabled() {
		return nil
	}
	ct := trace.NewCohortTrace(config, scenario.String(), seed)
	for i := 0; i < c.Len(); i++ {
		if !config.Wants(c.HasSepsis[i]) {
			continue
		}
		ct.Record(trace.IndividualRecord{
			Index:              i,
			BirthSetting:       c.BirthSetting[i].String(),
			HasSepsis:          c.HasSepsis[i],
			Screened:           c.Screened[i],
			RiskFactorPositive: c.RiskFactorPositive[i],
			DischargeHours:     hoursPtr(c.Discharge[i]),
			OnsetHours:         hoursPtr(c.Onset[i]),
			Site:               c.Site[i].String(),
		})
	}
	return ct
}

func hoursPtr(h OptionalHours) *float64 {
	if !h.Valid {
		return nil
	}
	v := h.Value
	return &v
}
