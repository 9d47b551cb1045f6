package sim

import "math/rand"

// sampleOnset draws an onset time for each septic individual in index order.
// Each draw picks a segment, then a uniform position within [lo, hi).
func sampleOnset(p Parameters, sepsis []bool, rng *rand.Rand) []OptionalHours {
	onset := make([]OptionalHours, len(sepsis))
	for i, septic := range sepsis {
		if septic {
			onset[i] = someHours(p.onset.Sample(rng))
		}
	}
	return onset
}
