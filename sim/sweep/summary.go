package sweep

import (
	"gonum.org/v1/gonum/stat"

	"github.com/cascade-sim/cascade-sim/sim"
)

// Moments is the sample mean and standard deviation of one quantity.
type Moments struct {
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"std_dev"`
}

// TierMoments summarizes tested and detected counts of one tier.
type TierMoments struct {
	Tested   Moments `yaml:"tested"`
	Detected Moments `yaml:"detected"`
}

// Summary describes the spread of outcomes across replicates.
type Summary struct {
	Scenario   sim.Scenario             `yaml:"scenario"`
	Replicates int                      `yaml:"replicates"`
	SepsisRate Moments                  `yaml:"sepsis_rate"`
	Tiers      map[sim.Tier]TierMoments `yaml:"tiers"`
}

// Summarize computes per-tier moments over results. StdDev is zero for a
// single replicate.
func Summarize(scenario sim.Scenario, results []*sim.Result) Summary {
	s := Summary{
		Scenario:   scenario,
		Replicates: len(results),
		Tiers:      make(map[sim.Tier]TierMoments, len(sim.Tiers)),
	}
	if len(results) == 0 {
		return s
	}

	rates := make([]float64, len(results))
	for i, r := range results {
		if n := r.Population(); n > 0 {
			septic := 0
			for _, v := range r.Sepsis {
				if v {
					septic++
				}
			}
			rates[i] = float64(septic) / float64(n)
		}
	}
	s.SepsisRate = moments(rates)

	tested := make([]float64, len(results))
	detected := make([]float64, len(results))
	for _, tier := range sim.Tiers {
		for i, r := range results {
			tested[i] = float64(r.Tested[tier])
			detected[i] = float64(r.Detected[tier])
		}
		s.Tiers[tier] = TierMoments{Tested: moments(tested), Detected: moments(detected)}
	}
	return s
}

func moments(xs []float64) Moments {
	if len(xs) == 1 {
		return Moments{Mean: xs[0]}
	}
	mean, std := stat.MeanStdDev(xs, nil)
	return Moments{Mean: mean, StdDev: std}
}
