package trace

// TraceSummary aggregates statistics from a CohortTrace.
type TraceSummary struct {
	TotalRecords     int
	SepticCount      int
	ScreenedCount    int
	ScreenPositive   int
	MeanOnsetHours   float64
	SiteDistribution map[string]int            // site → count of septic records
	SiteByBirth      map[string]map[string]int // birth setting → site → count
}

// Summarize computes aggregate statistics from a CohortTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(ct *CohortTrace) *TraceSummary {
	summary := &TraceSummary{
		SiteDistribution: make(map[string]int),
		SiteByBirth:      make(map[string]map[string]int),
	}
	if ct == nil {
		return summary
	}

	summary.TotalRecords = len(ct.Records)
	totalOnset := 0.0
	for _, r := range ct.Records {
		if r.Screened {
			summary.ScreenedCount++
		}
		if r.RiskFactorPositive {
			summary.ScreenPositive++
		}
		if !r.HasSepsis {
			continue
		}
		summary.SepticCount++
		if r.OnsetHours != nil {
			totalOnset += *r.OnsetHours
		}
		summary.SiteDistribution[r.Site]++
		bySite, ok := summary.SiteByBirth[r.BirthSetting]
		if !ok {
			bySite = make(map[string]int)
			summary.SiteByBirth[r.BirthSetting] = bySite
		}
		bySite[r.Site]++
	}
	if summary.SepticCount > 0 {
		summary.MeanOnsetHours = totalOnset / float64(summary.SepticCount)
	}

	return summary
}
