package sim

// aggregateTiers converts per-individual outcomes into tested and detected
// counts. Point-of-care tiers detect every case they test. The birth screen
// is offered to every facility birth, septic or not, but only counts septic
// positives as detected; it stays at zero when the scenario does not screen.
func aggregateTiers(scenario Scenario, c *Cohort) (tested, detected TierCounts) {
	tested = newTierCounts()
	detected = newTierCounts()

	for _, site := range c.Site {
		if tier, ok := site.Tier(); ok {
			tested[tier]++
			detected[tier]++
		}
	}

	if scenario.Screens() {
		for i, b := range c.BirthSetting {
			if b.IsFacility() {
				tested[TierBirthRF]++
			}
			if c.RiskFactorPositive[i] {
				detected[TierBirthRF]++
			}
		}
	}
	return tested, detected
}

// SiteCounts tallies assessment sites, skipping SiteNone.
func SiteCounts(sites []AssessmentSite) map[AssessmentSite]int {
	counts := make(map[AssessmentSite]int, len(AssessedSites))
	for _, s := range AssessedSites {
		counts[s] = 0
	}
	for _, s := range sites {
		if s.Assessed() {
			counts[s]++
		}
	}
	return counts
}
