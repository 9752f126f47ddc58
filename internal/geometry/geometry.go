// Package geometry implements the planetesimal calculator: the pure
// functions that turn a protoplanet's (axis, ecc, mass) plus the star and
// accretion constants into the radii and densities the driver sweeps with.
package geometry

import (
	"math"

	"github.com/san-kum/planetgen/internal/constants"
	"github.com/san-kum/planetgen/internal/protoplanet"
	"github.com/san-kum/planetgen/internal/star"
)

// Calculator bundles the star and constants that every formula below reads.
type Calculator struct {
	Star      star.Star
	Constants constants.DoleConstants
}

// New builds a Calculator for one run.
func New(s star.Star, c constants.DoleConstants) *Calculator {
	return &Calculator{Star: s, Constants: c}
}

// DustDensity is the baseline surface density at radius axis, monotonically
// decreasing: A * exp(-alpha * axis^(1/gamma)).
func (c *Calculator) DustDensity(axis float64) float64 {
	if axis <= 0 {
		axis = 1e-9
	}
	return c.Constants.DustDensityCoeff * math.Exp(-c.Constants.AlphaCoeff*math.Pow(axis, 1.0/c.Constants.GammaCoeff))
}

// CriticalMass is the gas-capture threshold, decreasing with increasing
// perihelion luminosity: B * (perihelion_distance * sqrt(luminosity))^(-0.75).
func (c *Calculator) CriticalMass(axis, ecc float64) float64 {
	perihelion := axis * (1 - ecc)
	if perihelion <= 0 {
		perihelion = 1e-9
	}
	temp := perihelion * math.Sqrt(c.Star.Luminosity)
	return c.Constants.BCoeff * math.Pow(temp, -0.75)
}

// reducedMass is Dole's reduced-mass factor, widening p's effective
// gravitational reach with increasing mass.
func reducedMass(mass float64) float64 {
	return math.Pow(mass/(1.0+mass), 0.25)
}

// InnerSweepLimit is the inner edge of the annulus p sweeps in one orbit,
// clamped to 0. The same annulus is also used as the collision-overlap
// test in internal/accretion.
func (c *Calculator) InnerSweepLimit(p protoplanet.ProtoPlanet) float64 {
	limit := p.Axis * (1 - p.Ecc) * (1 - reducedMass(p.Mass))
	if limit < 0 {
		limit = 0
	}
	return limit
}

func (c *Calculator) OuterSweepLimit(p protoplanet.ProtoPlanet) float64 {
	return p.Axis * (1 + p.Ecc) * (1 + reducedMass(p.Mass))
}

func (c *Calculator) IsGasGiant(p protoplanet.ProtoPlanet) bool {
	return p.Mass > c.CriticalMass(p.Axis, p.Ecc)
}

// BandVolume is the effective volume of the intersection of p's sweep
// annulus with [bandInner, bandOuter]; 0 when disjoint. Approximates the
// annulus as a flat disc (pi*r^2 difference) rather than integrating over
// eccentricity.
func (c *Calculator) BandVolume(p protoplanet.ProtoPlanet, bandInner, bandOuter float64) float64 {
	sweepInner := c.InnerSweepLimit(p)
	sweepOuter := c.OuterSweepLimit(p)

	overlapInner := math.Max(sweepInner, bandInner)
	overlapOuter := math.Min(sweepOuter, bandOuter)
	if overlapOuter <= overlapInner {
		return 0
	}

	bandwidth := sweepOuter - sweepInner
	if bandwidth <= 0 {
		return 0
	}

	return math.Pi * bandwidth * (overlapOuter*overlapOuter - overlapInner*overlapInner)
}

// DustAndGasDensity amplifies dustDensity with a gas contribution once mass
// exceeds criticalMass, using Dole's gas/dust ratio constant K.
func (c *Calculator) DustAndGasDensity(dustDensity, criticalMass, mass float64) float64 {
	if mass <= criticalMass {
		return dustDensity
	}
	k := c.Constants.KCoeff
	gasDensity := k * dustDensity / (1.0 + math.Sqrt(criticalMass/mass)*(k-1.0))
	return dustDensity + gasDensity
}

// OuterDustLimit is the initial disc outer edge: 200 * stellarMass^(1/3) AU.
func (c *Calculator) OuterDustLimit() float64 {
	return 200.0 * math.Pow(c.Star.Mass, 1.0/3.0)
}
