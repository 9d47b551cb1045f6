package sim

import (
	"math/rand"

	"github.com/cascade-sim/cascade-sim/sim/sampling"
)

// screenAtBirth applies the risk-factor screen to septic facility births.
// Hospital-born cases are drawn first in index order, then clinic-born ones,
// each with its setting's sensitivity. Everyone else stays unscreened and
// negative.
func screenAtBirth(p Parameters, births []BirthSetting, sepsis []bool, rng *rand.Rand) (screened, positive []bool) {
	screened = make([]bool, len(births))
	positive = make([]bool, len(births))
	for _, setting := range []BirthSetting{BirthHospital, BirthClinic} {
		sens := p.ScreenSensitivity(setting)
		for i, b := range births {
			if b != setting || !sepsis[i] {
				continue
			}
			screened[i] = true
			positive[i] = sampling.Bernoulli(rng, sens)
		}
	}
	return screened, positive
}
