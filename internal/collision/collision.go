// Package collision implements the collision calculator: the coalesced
// axis and eccentricity of two protoplanets judged too close by the driver.
package collision

import (
	"math"

	"github.com/san-kum/planetgen/internal/protoplanet"
)

// CoalesceAxis is the mass-weighted mean of the two axes.
func CoalesceAxis(massA, axisA, massB, axisB float64) float64 {
	return (massA*axisA + massB*axisB) / (massA + massB)
}

// CoalesceEccentricity conserves angular momentum in the two-body reduced
// system: each body's contribution is m*sqrt(a*(1-e^2)); the combined
// momentum, divided by total mass and sqrt(new axis), recovers the new
// eccentricity. The sqrt argument is clamped to 0 to absorb rounding
// degeneracy near e=1.
func CoalesceEccentricity(massA, axisA, eccA, massB, axisB, eccB, newAxis float64) float64 {
	angularMomentumA := massA * math.Sqrt(axisA*(1-eccA*eccA))
	angularMomentumB := massB * math.Sqrt(axisB*(1-eccB*eccB))
	totalMass := massA + massB
	totalMomentum := angularMomentumA + angularMomentumB

	term := totalMomentum / (totalMass * math.Sqrt(newAxis))
	radicand := 1 - term*term
	if radicand < 0 {
		radicand = 0
	}
	return math.Sqrt(radicand)
}

// Merge produces the successor protoplanet representing the union of a
// and b.
func Merge(a, b protoplanet.ProtoPlanet) protoplanet.ProtoPlanet {
	mass := a.Mass + b.Mass
	axis := CoalesceAxis(a.Mass, a.Axis, b.Mass, b.Axis)
	ecc := CoalesceEccentricity(a.Mass, a.Axis, a.Ecc, b.Mass, b.Axis, b.Ecc, axis)
	return protoplanet.New(axis, ecc, mass)
}
