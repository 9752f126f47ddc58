// Package units converts between the units the accretion engine works in
// (AU, solar masses) and the units a human-facing report uses.
package units

const (
	AUInKm                 = 1.495978707e8
	SolarMassInEarthMasses = 332946.0
	SolarMassInKg          = 1.98847e30
)

func AUToKm(au float64) float64 { return au * AUInKm }

func SolarMassToEarthMass(solarMass float64) float64 { return solarMass * SolarMassInEarthMasses }

func SolarMassToKg(solarMass float64) float64 { return solarMass * SolarMassInKg }
