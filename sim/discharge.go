package sim

import "math/rand"

// sampleDischarge draws discharge times for hospital births in index order,
// then for clinic births. Home births have no discharge time.
func sampleDischarge(p Parameters, births []BirthSetting, rng *rand.Rand) []OptionalHours {
	discharge := make([]OptionalHours, len(births))
	for _, setting := range []BirthSetting{BirthHospital, BirthClinic} {
		dist := p.discharge(setting)
		for i, b := range births {
			if b == setting {
				discharge[i] = someHours(dist.Sample(rng))
			}
		}
	}
	return discharge
}
