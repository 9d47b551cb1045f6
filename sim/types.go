package sim

import (
	"fmt"
	"strings"
)

// BirthSetting is where a newborn was delivered.
type BirthSetting int

const (
	BirthHospital BirthSetting = iota
	BirthClinic
	BirthHome
)

// BirthSettings lists every setting in the order of the birth-setting weights.
var BirthSettings = []BirthSetting{BirthHospital, BirthClinic, BirthHome}

func (b BirthSetting) String() string {
	switch b {
	case BirthHospital:
		return "hospital"
	case BirthClinic:
		return "clinic"
	case BirthHome:
		return "home"
	default:
		return fmt.Sprintf("BirthSetting(%d)", int(b))
	}
}

// IsFacility reports whether the birth took place in a hospital or clinic.
func (b BirthSetting) IsFacility() bool {
	return b == BirthHospital || b == BirthClinic
}

func (b BirthSetting) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// AssessmentSite is where a septic newborn is first assessed.
// The zero value SiteNone marks individuals who are never assessed.
type AssessmentSite int

const (
	SiteNone AssessmentSite = iota
	SiteHospital
	SiteClinicInpatient
	SitePHCPublic
	SitePHCPrivate
	SiteCommunityNoFormal
)

// AssessedSites lists every site a septic individual can end up at.
var AssessedSites = []AssessmentSite{
	SiteHospital,
	SiteClinicInpatient,
	SitePHCPublic,
	SitePHCPrivate,
	SiteCommunityNoFormal,
}

func (s AssessmentSite) String() string {
	switch s {
	case SiteNone:
		return "none"
	case SiteHospital:
		return "hospital"
	case SiteClinicInpatient:
		return "clinic_inpatient"
	case SitePHCPublic:
		return "phc_public"
	case SitePHCPrivate:
		return "phc_private"
	case SiteCommunityNoFormal:
		return "community_noformal"
	default:
		return fmt.Sprintf("AssessmentSite(%d)", int(s))
	}
}

// Assessed reports whether s is one of the terminal assessment states.
func (s AssessmentSite) Assessed() bool {
	return s >= SiteHospital && s <= SiteCommunityNoFormal
}

// Tier returns the point-of-care tier that tests at this site.
// ok is false for SiteNone.
func (s AssessmentSite) Tier() (tier Tier, ok bool) {
	switch s {
	case SiteHospital:
		return TierHospPOC, true
	case SiteClinicInpatient, SitePHCPublic, SitePHCPrivate:
		return TierPHCPOC, true
	case SiteCommunityNoFormal:
		return TierCommPOC, true
	default:
		return 0, false
	}
}

func (s AssessmentSite) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Tier is a diagnostic checkpoint in the cascade.
type Tier int

const (
	TierBirthRF Tier = iota
	TierHospPOC
	TierPHCPOC
	TierCommPOC
)

// Tiers lists all tiers in cascade order.
var Tiers = []Tier{TierBirthRF, TierHospPOC, TierPHCPOC, TierCommPOC}

func (t Tier) String() string {
	switch t {
	case TierBirthRF:
		return "BIRTH_RF"
	case TierHospPOC:
		return "HOSP_POC"
	case TierPHCPOC:
		return "PHC_POC"
	case TierCommPOC:
		return "COMM_POC"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// TierCounts maps every tier to a count. Counts built by the simulator always
// carry all four tiers.
type TierCounts map[Tier]int

func newTierCounts() TierCounts {
	c := make(TierCounts, len(Tiers))
	for _, t := range Tiers {
		c[t] = 0
	}
	return c
}

// Total sums the counts over the given tiers.
func (c TierCounts) Total(tiers ...Tier) int {
	n := 0
	for _, t := range tiers {
		n += c[t]
	}
	return n
}

// Scenario selects whether the birth risk-factor screen runs.
type Scenario int

const (
	// ScenarioA runs without a birth screen.
	ScenarioA Scenario = iota
	// ScenarioB applies the risk-factor screen to facility births.
	ScenarioB
)

func (s Scenario) String() string {
	if s == ScenarioB {
		return "B"
	}
	return "A"
}

func (s Scenario) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Screens reports whether the birth screen is applied.
func (s Scenario) Screens() bool {
	return s == ScenarioB
}

// ParseScenario matches "B" case-insensitively. Any other value, including
// typos, selects scenario A.
func ParseScenario(name string) Scenario {
	if strings.EqualFold(name, "B") {
		return ScenarioB
	}
	return ScenarioA
}

// OptionalHours is a time in hours that is only meaningful when Valid.
type OptionalHours struct {
	Value float64
	Valid bool
}

func someHours(v float64) OptionalHours {
	return OptionalHours{Value: v, Valid: true}
}
