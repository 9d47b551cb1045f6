package sim

// ExpectedSiteProportions returns, per birth, the probability that a newborn
// is septic and first assessed at each site. SiteNone carries the
// probability of not being septic. Values sum to 1.
func ExpectedSiteProportions(p Parameters) map[AssessmentSite]float64 {
	out := make(map[AssessmentSite]float64, len(AssessedSites)+1)
	for _, s := range AssessedSites {
		out[s] = 0
	}
	inc := p.SepsisIncidence()
	out[SiteNone] = 1 - inc
	if p.onset == nil {
		return out
	}

	caughtHosp := p.BirthSettingProb(BirthHospital) * p.hospitalDischarge.Expect(p.onset.CDF)
	caughtClinic := p.BirthSettingProb(BirthClinic) * p.clinicDischarge.Expect(p.onset.CDF)
	released := 1 - caughtHosp - caughtClinic

	seek := p.CareSeekingProb()
	out[SiteHospital] = inc * caughtHosp
	out[SiteClinicInpatient] = inc * caughtClinic
	out[SitePHCPublic] = inc * released * seek * p.PublicPHCFrac()
	out[SitePHCPrivate] = inc * released * seek * (1 - p.PublicPHCFrac())
	out[SiteCommunityNoFormal] = inc * released * (1 - seek)
	return out
}
