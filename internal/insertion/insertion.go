// Package insertion implements the two-phase sampling strategy that
// proposes each new planetesimal's semi-major axis and eccentricity.
package insertion

import (
	"math"

	"github.com/san-kum/planetgen/internal/constants"
	"github.com/san-kum/planetgen/internal/dustdisc"
	"github.com/san-kum/planetgen/internal/rng"
)

// Strategy holds the constants SemiMajorAxis and Eccentricity read.
type Strategy struct {
	Constants constants.DoleConstants
}

// New builds a Strategy over c.
func New(c constants.DoleConstants) *Strategy {
	return &Strategy{Constants: c}
}

// SemiMajorAxis draws a candidate axis: uniform across the whole legal
// range below the randomised-count threshold, then biased toward bands
// that still have dust. ok is false only when no eligible band remains.
func (s *Strategy) SemiMajorAxis(injectedCount int, bands []dustdisc.DustBand, source rng.Source) (axis float64, ok bool) {
	innermost := s.Constants.InnermostPlanet
	outermost := s.Constants.OutermostPlanet

	if injectedCount < s.Constants.RandomisedCount {
		return innermost + source.Uniform()*(outermost-innermost), true
	}

	candidates := make([]dustdisc.DustBand, 0, len(bands))
	for _, b := range bands {
		if b.HasDust && b.Outer > innermost && b.Inner < outermost {
			candidates = append(candidates, b)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}

	idx := int(source.Uniform() * float64(len(candidates)))
	if idx >= len(candidates) {
		idx = len(candidates) - 1
	}
	chosen := candidates[idx]

	lo := math.Max(chosen.Inner, innermost)
	hi := math.Min(chosen.Outer, outermost)
	return lo + source.Uniform()*(hi-lo), true
}

// Eccentricity draws 1 - U^Q, a distribution concentrated near 0 with a
// heavy tail toward 1.
func (s *Strategy) Eccentricity(source rng.Source) float64 {
	u := source.Uniform()
	return 1 - math.Pow(u, s.Constants.EccentricityCoeff)
}
