// Package star samples a primary star's mass, luminosity, and age via
// table lookups and closed-form formulae. The accretion core only ever
// reads the resulting Star value.
package star

import (
	"math"

	"github.com/san-kum/planetgen/internal/rng"
)

type Star struct {
	Mass          float64
	Luminosity    float64
	Age           float64
	SpectralClass string
}

// massBand is one entry of a coarse main-sequence mass table: a spectral
// class, its mass range in solar masses, and its approximate main-sequence
// lifetime in billion years.
type massBand struct {
	class       string
	minMass     float64
	maxMass     float64
	lifetimeGyr float64
}

var mainSequence = []massBand{
	{"M", 0.08, 0.45, 200},
	{"K", 0.45, 0.8, 30},
	{"G", 0.8, 1.04, 10},
	{"F", 1.04, 1.4, 4},
	{"A", 1.4, 2.1, 1.3},
}

// NewSol returns the Sun, used as the default star when no random draw is
// requested.
func NewSol() Star {
	return Star{Mass: 1.0, Luminosity: 1.0, Age: 4.6, SpectralClass: "G"}
}

// NewRandomStar samples a star uniformly across the main-sequence mass
// table, derives luminosity from the mass-luminosity relation L = M^3.5,
// and draws an age uniformly within the star's main-sequence lifetime.
func NewRandomStar(source rng.Source) Star {
	band := mainSequence[int(source.Uniform()*float64(len(mainSequence)))%len(mainSequence)]
	mass := band.minMass + source.Uniform()*(band.maxMass-band.minMass)
	luminosity := massLuminosity(mass)
	age := source.Uniform() * band.lifetimeGyr
	return Star{Mass: mass, Luminosity: luminosity, Age: age, SpectralClass: band.class}
}

// massLuminosity returns L = M^3.5, the standard main-sequence
// mass-luminosity relation.
func massLuminosity(mass float64) float64 {
	return math.Pow(mass, 3.5)
}
