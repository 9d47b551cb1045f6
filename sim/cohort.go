package sim

// Cohort holds one synthetic population as parallel per-individual slices.
// Index i refers to the same newborn in every slice.
type Cohort struct {
	BirthSetting []BirthSetting
	HasSepsis    []bool

	// Screened marks individuals the birth screen was applied to: septic
	// facility births in scenario B. RiskFactorPositive is false elsewhere.
	Screened           []bool
	RiskFactorPositive []bool

	// Discharge is valid only for facility births, Onset only for septic ones.
	Discharge []OptionalHours
	Onset     []OptionalHours

	// Site is SiteNone for everyone without sepsis.
	Site []AssessmentSite
}

// Len returns the number of individuals.
func (c *Cohort) Len() int {
	return len(c.BirthSetting)
}

// SepticCount returns the number of sepsis-positive individuals.
func (c *Cohort) SepticCount() int {
	n := 0
	for _, s := range c.HasSepsis {
		if s {
			n++
		}
	}
	return n
}
