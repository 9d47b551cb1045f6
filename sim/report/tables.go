// Package report turns simulation results into per-1000-birth tables and
// writes them as CSV. It only reads sim.Result; the simulator never calls it.
package report

import (
	"math"
	"strconv"

	"github.com/cascade-sim/cascade-sim/sim"
)

// Per1000 normalizes count to occurrences per 1,000 births, rounding half to even.
func Per1000(count, births int) int {
	if births <= 0 {
		return 0
	}
	return int(math.RoundToEven(float64(count) * 1000 / float64(births)))
}

// Table is a header plus string rows, ready for CSV output.
type Table struct {
	Header []string
	Rows   [][]string
}

// siteLabels orders and names the first-assessment table rows.
var siteLabels = []struct {
	Site  sim.AssessmentSite
	Label string
}{
	{sim.SiteHospital, "Hospital ward"},
	{sim.SiteClinicInpatient, "Clinic inpatient"},
	{sim.SitePHCPublic, "PHC public OPD"},
	{sim.SitePHCPrivate, "PHC private OPD"},
	{sim.SiteCommunityNoFormal, "Community – no provider"},
}

// SiteRow is one row of the first-assessment table.
type SiteRow struct {
	Site         sim.AssessmentSite
	Label        string
	CasesPer1000 int
}

// FirstAssessment returns suspected sepsis cases per 1,000 births by first
// assessment site.
func FirstAssessment(r *sim.Result) []SiteRow {
	counts := sim.SiteCounts(r.Sites)
	rows := make([]SiteRow, 0, len(siteLabels))
	for _, sl := range siteLabels {
		rows = append(rows, SiteRow{
			Site:         sl.Site,
			Label:        sl.Label,
			CasesPer1000: Per1000(counts[sl.Site], r.Population()),
		})
	}
	return rows
}

// FirstAssessmentTable renders FirstAssessment for CSV output.
func FirstAssessmentTable(r *sim.Result) Table {
	t := Table{Header: []string{"Site", "Cases_per_1000"}}
	for _, row := range FirstAssessment(r) {
		t.Rows = append(t.Rows, []string{row.Label, strconv.Itoa(row.CasesPer1000)})
	}
	return t
}

// ScenarioLabel names a scenario in report tables.
func ScenarioLabel(s sim.Scenario) string {
	if s == sim.ScenarioB {
		return "B – birth screen"
	}
	return "A – no screen"
}

// CoverageRow is one scenario × tier row of the diagnostic coverage table.
type CoverageRow struct {
	Scenario        sim.Scenario
	Tier            sim.Tier
	TestedPer1000   int
	DetectedPer1000 int
}

// Coverage returns tested and detected rates for every tier of every result.
func Coverage(results ...*sim.Result) []CoverageRow {
	rows := make([]CoverageRow, 0, len(results)*len(sim.Tiers))
	for _, r := range results {
		n := r.Population()
		for _, tier := range sim.Tiers {
			rows = append(rows, CoverageRow{
				Scenario:        r.Scenario,
				Tier:            tier,
				TestedPer1000:   Per1000(r.Tested[tier], n),
				DetectedPer1000: Per1000(r.Detected[tier], n),
			})
		}
	}
	return rows
}

// CoverageTable renders Coverage for CSV output.
func CoverageTable(results ...*sim.Result) Table {
	t := Table{Header: []string{"Scenario", "Tier", "Babies_tested_per_1000", "Sepsis_detected_per_1000"}}
	for _, row := range Coverage(results...) {
		t.Rows = append(t.Rows, []string{
			ScenarioLabel(row.Scenario),
			row.Tier.String(),
			strconv.Itoa(row.TestedPer1000),
			strconv.Itoa(row.DetectedPer1000),
		})
	}
	return t
}

// CumulativePoint is the running detection total after a point-of-care tier.
type CumulativePoint struct {
	Tier            sim.Tier `yaml:"tier"`
	DetectedPer1000 int      `yaml:"detected_per_1000"`
}

// CumulativeDetection accumulates per-1000 detections along the
// point-of-care tiers in cascade order. Each tier is rounded before summing.
func CumulativeDetection(r *sim.Result) []CumulativePoint {
	tiers := []sim.Tier{sim.TierHospPOC, sim.TierPHCPOC, sim.TierCommPOC}
	points := make([]CumulativePoint, 0, len(tiers))
	cum := 0
	for _, tier := range tiers {
		cum += Per1000(r.Detected[tier], r.Population())
		points = append(points, CumulativePoint{Tier: tier, DetectedPer1000: cum})
	}
	return points
}
