package sim

import (
	"errors"
	"fmt"

	"github.com/cascade-sim/cascade-sim/sim/sampling"
)

// Configuration error kinds. Use errors.Is to test for them.
var (
	ErrInvalidProbabilityDistribution = sampling.ErrInvalidDistribution
	ErrInvalidSegmentBounds           = sampling.ErrInvalidSegmentBounds
	ErrLengthMismatch                 = sampling.ErrLengthMismatch
	ErrInvalidPopulationSize          = errors.New("invalid population size")
)

// ParameterSpec is the editable, YAML-loadable form of the model inputs.
// Convert it with NewParameters before simulating.
type ParameterSpec struct {
	Population        int              `yaml:"population" validate:"gte=0"`
	BirthSettingProbs BirthSettingSpec `yaml:"birth_setting_probs"`
	SepsisIncidence   float64          `yaml:"sepsis_incidence" validate:"gte=0,lte=1"`
	HospitalDischarge DischargeSpec    `yaml:"hospital_discharge"`
	ClinicDischarge   DischargeSpec    `yaml:"clinic_discharge"`
	OnsetSegments     []SegmentSpec    `yaml:"onset_segments" validate:"required,min=1,dive"`
	CareSeekingProb   float64          `yaml:"care_seeking_prob" validate:"gte=0,lte=1"`
	PublicPHCFrac     float64          `yaml:"public_phc_frac" validate:"gte=0,lte=1"`
	PrivatePHCFrac    float64          `yaml:"private_phc_frac" validate:"gte=0,lte=1"`
	ScreenSensitivity SensitivitySpec  `yaml:"screen_sensitivity"`
}

// BirthSettingSpec holds the three birth-setting probabilities.
type BirthSettingSpec struct {
	Hospital float64 `yaml:"hospital" validate:"gte=0,lte=1"`
	Clinic   float64 `yaml:"clinic" validate:"gte=0,lte=1"`
	Home     float64 `yaml:"home" validate:"gte=0,lte=1"`
}

// DischargeSpec is a discrete distribution of discharge times in hours.
type DischargeSpec struct {
	Hours []float64 `yaml:"hours" validate:"required,min=1,dive,gte=0"`
	Probs []float64 `yaml:"probs" validate:"required,min=1,dive,gte=0,lte=1"`
}

// SegmentSpec is one piece of the onset-time distribution: with probability
// Weight, onset is uniform in [Lo, Hi) hours.
type SegmentSpec struct {
	Weight float64 `yaml:"weight" validate:"gte=0,lte=1"`
	Lo     float64 `yaml:"lo" validate:"gte=0"`
	Hi     float64 `yaml:"hi" validate:"gtfield=Lo"`
}

// SensitivitySpec holds birth-screen sensitivity by facility type.
type SensitivitySpec struct {
	Hospital float64 `yaml:"hospital" validate:"gte=0,lte=1"`
	Clinic   float64 `yaml:"clinic" validate:"gte=0,lte=1"`
}

// DefaultParameterSpec returns a fresh copy of the reference inputs.
func DefaultParameterSpec() ParameterSpec {
	return ParameterSpec{
		Population:        100_000,
		BirthSettingProbs: BirthSettingSpec{Hospital: 0.35, Clinic: 0.45, Home: 0.20},
		SepsisIncidence:   0.15,
		HospitalDischarge: DischargeSpec{Hours: []float64{12, 36}, Probs: []float64{0.28, 0.72}},
		ClinicDischarge:   DischargeSpec{Hours: []float64{12, 24}, Probs: []float64{0.90, 0.10}},
		OnsetSegments: []SegmentSpec{
			{Weight: 0.5, Lo: 0, Hi: 24},
			{Weight: 0.3, Lo: 24, Hi: 72},
			{Weight: 0.2, Lo: 72, Hi: 672},
		},
		CareSeekingProb:   0.59,
		PublicPHCFrac:     0.65,
		PrivatePHCFrac:    0.35,
		ScreenSensitivity: SensitivitySpec{Hospital: 0.65, Clinic: 0.55},
	}
}

// clone deep-copies the slices so callers cannot mutate shared state.
func (s ParameterSpec) clone() ParameterSpec {
	out := s
	out.HospitalDischarge = s.HospitalDischarge.clone()
	out.ClinicDischarge = s.ClinicDischarge.clone()
	out.OnsetSegments = append([]SegmentSpec(nil), s.OnsetSegments...)
	return out
}

func (d DischargeSpec) clone() DischargeSpec {
	return DischargeSpec{
		Hours: append([]float64(nil), d.Hours...),
		Probs: append([]float64(nil), d.Probs...),
	}
}

// Parameters is a validated, immutable model configuration.
// The zero value describes an empty population and is safe to simulate.
type Parameters struct {
	spec              ParameterSpec
	birthSetting      *sampling.Categorical
	hospitalDischarge *sampling.Discrete
	clinicDischarge   *sampling.Discrete
	onset             *sampling.Segments
}

// NewParameters validates spec and builds the samplers every stage needs.
// It fails fast on the first malformed input; no sampling happens here.
func NewParameters(spec ParameterSpec) (Parameters, error) {
	spec = spec.clone()

	if spec.Population < 0 {
		return Parameters{}, fmt.Errorf("%w: population must be non-negative, got %d", ErrInvalidPopulationSize, spec.Population)
	}

	b := spec.BirthSettingProbs
	birth, err := sampling.NewCategorical([]float64{b.Hospital, b.Clinic, b.Home})
	if err != nil {
		return Parameters{}, fmt.Errorf("birth_setting_probs: %w", err)
	}

	for _, p := range []struct {
		name  string
		value float64
	}{
		{"sepsis_incidence", spec.SepsisIncidence},
		{"care_seeking_prob", spec.CareSeekingProb},
		{"screen_sensitivity.hospital", spec.ScreenSensitivity.Hospital},
		{"screen_sensitivity.clinic", spec.ScreenSensitivity.Clinic},
	} {
		if err := sampling.CheckProbability(p.name, p.value); err != nil {
			return Parameters{}, err
		}
	}

	if err := sampling.CheckDistribution([]float64{spec.PublicPHCFrac, spec.PrivatePHCFrac}); err != nil {
		return Parameters{}, fmt.Errorf("public_phc_frac/private_phc_frac: %w", err)
	}

	hosp, err := sampling.NewDiscrete(spec.HospitalDischarge.Hours, spec.HospitalDischarge.Probs)
	if err != nil {
		return Parameters{}, fmt.Errorf("hospital_discharge: %w", err)
	}
	clinic, err := sampling.NewDiscrete(spec.ClinicDischarge.Hours, spec.ClinicDischarge.Probs)
	if err != nil {
		return Parameters{}, fmt.Errorf("clinic_discharge: %w", err)
	}

	weights := make([]float64, len(spec.OnsetSegments))
	bounds := make([]sampling.Interval, len(spec.OnsetSegments))
	for i, seg := range spec.OnsetSegments {
		weights[i] = seg.Weight
		bounds[i] = sampling.Interval{Lo: seg.Lo, Hi: seg.Hi}
	}
	onset, err := sampling.NewSegments(weights, bounds)
	if err != nil {
		return Parameters{}, fmt.Errorf("onset_segments: %w", err)
	}

	return Parameters{
		spec:              spec,
		birthSetting:      birth,
		hospitalDischarge: hosp,
		clinicDischarge:   clinic,
		onset:             onset,
	}, nil
}

// DefaultParameters returns Parameters built from DefaultParameterSpec.
func DefaultParameters() Parameters {
	p, err := NewParameters(DefaultParameterSpec())
	if err != nil {
		panic(fmt.Sprintf("default parameters are invalid: %v", err))
	}
	return p
}

// WithPopulation returns a copy of p simulating n individuals.
func (p Parameters) WithPopulation(n int) (Parameters, error) {
	spec := p.Spec()
	spec.Population = n
	return NewParameters(spec)
}

// Spec returns a copy of the inputs p was built from.
func (p Parameters) Spec() ParameterSpec {
	return p.spec.clone()
}

// Population returns N.
func (p Parameters) Population() int { return p.spec.Population }

// SepsisIncidence returns the per-birth probability of sepsis.
func (p Parameters) SepsisIncidence() float64 { return p.spec.SepsisIncidence }

// CareSeekingProb returns the probability that a case not caught in-facility seeks formal care.
func (p Parameters) CareSeekingProb() float64 { return p.spec.CareSeekingProb }

// PublicPHCFrac returns the share of care-seekers using a public facility.
func (p Parameters) PublicPHCFrac() float64 { return p.spec.PublicPHCFrac }

// BirthSettingProb returns the probability of birth in setting b.
func (p Parameters) BirthSettingProb(b BirthSetting) float64 {
	switch b {
	case BirthHospital:
		return p.spec.BirthSettingProbs.Hospital
	case BirthClinic:
		return p.spec.BirthSettingProbs.Clinic
	case BirthHome:
		return p.spec.BirthSettingProbs.Home
	}
	return 0
}

// ScreenSensitivity returns the birth-screen sensitivity for setting b.
// Home births are never screened.
func (p Parameters) ScreenSensitivity(b BirthSetting) float64 {
	switch b {
	case BirthHospital:
		return p.spec.ScreenSensitivity.Hospital
	case BirthClinic:
		return p.spec.ScreenSensitivity.Clinic
	}
	return 0
}

func (p Parameters) discharge(b BirthSetting) *sampling.Discrete {
	switch b {
	case BirthHospital:
		return p.hospitalDischarge
	case BirthClinic:
		return p.clinicDischarge
	}
	return nil
}
