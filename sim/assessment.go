package sim

import (
	"math/rand"

	"github.com/cascade-sim/cascade-sim/sim/sampling"
)

// classifyAssessment assigns each septic individual exactly one first
// assessment site. Rules, in precedence order:
//
//  1. hospital birth with onset before discharge: SiteHospital
//  2. clinic birth with onset before discharge: SiteClinicInpatient
//  3. otherwise a care-seeking draw; seekers then draw public vs private PHC,
//     non-seekers stay in the community with no formal provider.
//
// Only rule 3 consumes random draws, one or two per individual in index order.
func classifyAssessment(p Parameters, c *Cohort, rng *rand.Rand) []AssessmentSite {
	sites := make([]AssessmentSite, c.Len())
	for i, septic := range c.HasSepsis {
		if !septic {
			continue
		}
		sites[i] = assessOne(p, c.BirthSetting[i], c.Onset[i], c.Discharge[i], rng)
	}
	return sites
}

func assessOne(p Parameters, birth BirthSetting, onset, discharge OptionalHours, rng *rand.Rand) AssessmentSite {
	if birth.IsFacility() && discharge.Valid && onset.Value < discharge.Value {
		if birth == BirthHospital {
			return SiteHospital
		}
		return SiteClinicInpatient
	}
	if !sampling.Bernoulli(rng, p.CareSeekingProb()) {
		return SiteCommunityNoFormal
	}
	if sampling.Bernoulli(rng, p.PublicPHCFrac()) {
		return SitePHCPublic
	}
	return SitePHCPrivate
}
