// Package protoplanet defines the forming-body entity. Its derived
// geometry (sweep limits, critical mass) is computed on demand by the
// geometry package from (ProtoPlanet, star, constants) rather than stored
// on the body, avoiding a cyclic reference to its calculator.
package protoplanet

// ProtoPlanet is a forming body: axis and eccentricity are fixed at
// creation (ecc only changes on collision, via a freshly-built successor),
// mass grows monotonically during a single accretion phase.
type ProtoPlanet struct {
	Axis float64
	Ecc  float64
	Mass float64
}

func New(axis, ecc, mass float64) ProtoPlanet {
	return ProtoPlanet{Axis: axis, Ecc: ecc, Mass: mass}
}

// WithMass returns a copy with an updated mass, avoiding a mutation of a
// shared value in place.
func (p ProtoPlanet) WithMass(mass float64) ProtoPlanet {
	p.Mass = mass
	return p
}
