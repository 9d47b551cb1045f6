package trace

// IndividualRecord captures the sampled pathway of one newborn.
// Pointer fields are nil when the value is undefined for this individual.
type IndividualRecord struct {
	Index              int
	BirthSetting       string
	HasSepsis          bool
	Screened           bool
	RiskFactorPositive bool
	DischargeHours     *float64 // facility births only
	OnsetHours         *float64 // septic individuals only
	Site               string   // "none" when not assessed
}
