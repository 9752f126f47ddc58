// Package ecosphere computes habitable-zone radii and a coarse atmosphere
// classification over a finished planet: closed-form formulae run after
// the accretion core has already produced it.
package ecosphere

import (
	"math"

	"github.com/san-kum/planetgen/internal/protoplanet"
	"github.com/san-kum/planetgen/internal/star"
)

// EcosphereRadius is the mean habitable-zone orbit, sqrt(luminosity) AU.
func EcosphereRadius(s star.Star) float64 {
	return math.Sqrt(s.Luminosity)
}

const greenhouseFraction = 0.93

func GreenhouseRadius(s star.Star) float64 {
	return greenhouseFraction * EcosphereRadius(s)
}

const habitableBandWidth = 0.2

func IsHabitable(p protoplanet.ProtoPlanet, isGasGiant bool, s star.Star) bool {
	if isGasGiant {
		return false
	}
	radius := EcosphereRadius(s)
	low, high := radius*(1-habitableBandWidth), radius*(1+habitableBandWidth)
	return p.Axis >= low && p.Axis <= high
}

// SimpleAtmosphere gives a coarse classification from mass and distance
// from the greenhouse radius; not a substitute for a full radiative
// iteration.
func SimpleAtmosphere(p protoplanet.ProtoPlanet, isGasGiant bool, s star.Star) string {
	if isGasGiant {
		return "gas-giant-envelope"
	}

	const earthMass = 3.0e-6 // solar masses
	greenhouse := GreenhouseRadius(s)

	switch {
	case p.Mass < 0.05*earthMass:
		return "none"
	case p.Axis < greenhouse:
		return "dense"
	default:
		return "thin"
	}
}
