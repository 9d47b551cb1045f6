package sim

import (
	"math/rand"

	"github.com/cascade-sim/cascade-sim/sim/sampling"
)

// generatePopulation draws a birth setting for every individual in index
// order, then a sepsis flag for every individual in index order. Sepsis is
// independent of birth setting.
func generatePopulation(p Parameters, rng *rand.Rand) ([]BirthSetting, []bool) {
	n := p.Population()
	births := make([]BirthSetting, n)
	for i := range births {
		births[i] = BirthSettings[p.birthSetting.Sample(rng)]
	}
	sepsis := make([]bool, n)
	for i := range sepsis {
		sepsis[i] = sampling.Bernoulli(rng, p.SepsisIncidence())
	}
	return births, sepsis
}
