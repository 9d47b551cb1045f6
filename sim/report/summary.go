package report

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/cascade-sim/cascade-sim/sim"
)

// SiteRate pairs a simulated per-1000 rate with its closed-form expectation.
type SiteRate struct {
	Per1000         int     `yaml:"per_1000"`
	ExpectedPer1000 float64 `yaml:"expected_per_1000"`
}

// ScenarioSummary is the headline output of one scenario run.
type ScenarioSummary struct {
	Scenario    sim.Scenario                    `yaml:"scenario"`
	Label       string                          `yaml:"label"`
	SepticCount int                             `yaml:"septic_count"`
	Tested      sim.TierCounts                  `yaml:"tested"`
	Detected    sim.TierCounts                  `yaml:"detected"`
	Sites       map[sim.AssessmentSite]SiteRate `yaml:"first_assessment"`
	Cumulative  []CumulativePoint               `yaml:"cumulative_detection"`
}

// Summary is the document printed at the end of a run.
type Summary struct {
	RunID      string            `yaml:"run_id"`
	Seed       int64             `yaml:"seed"`
	Population int               `yaml:"population"`
	Scenarios  []ScenarioSummary `yaml:"scenarios"`
}

// NewSummary builds a Summary with a fresh run id.
func NewSummary(seed int64, p sim.Parameters, results ...*sim.Result) Summary {
	expected := sim.ExpectedSiteProportions(p)
	s := Summary{
		RunID:      uuid.NewString(),
		Seed:       seed,
		Population: p.Population(),
	}
	for _, r := range results {
		counts := sim.SiteCounts(r.Sites)
		sites := make(map[sim.AssessmentSite]SiteRate, len(sim.AssessedSites))
		for _, site := range sim.AssessedSites {
			sites[site] = SiteRate{
				Per1000:         Per1000(counts[site], r.Population()),
				ExpectedPer1000: expected[site] * 1000,
			}
		}
		septic := 0
		for _, v := range r.Sepsis {
			if v {
				septic++
			}
		}
		s.Scenarios = append(s.Scenarios, ScenarioSummary{
			Scenario:    r.Scenario,
			Label:       ScenarioLabel(r.Scenario),
			SepticCount: septic,
			Tested:      r.Tested,
			Detected:    r.Detected,
			Sites:       sites,
			Cumulative:  CumulativeDetection(r),
		})
	}
	return s
}

// Write renders the summary as YAML under a header line.
func (s Summary) Write(w io.Writer) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshalling summary: %w", err)
	}
	if _, err := fmt.Fprintf(w, "=== Cascade Summary ===\n%s", data); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}
