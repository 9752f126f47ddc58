// Package profile is the registry of calculator variants: Dole, Burrell,
// Fogg, and Folkins. These are not an inheritance hierarchy — the same
// geometry/collision/driver code parameterized by a different
// constants.DoleConstants, selected here by name.
package profile

import (
	"fmt"

	"github.com/san-kum/planetgen/internal/constants"
)

// Profile names a calculator variant and the constants it supplies.
type Profile struct {
	Name      string
	Constants constants.DoleConstants
}

type factory func() constants.DoleConstants

// Registry maps a variant name to the constants.DoleConstants it produces.
type Registry struct {
	variants map[string]factory
}

// NewRegistry builds the registry with the four known variants.
func NewRegistry() *Registry {
	r := &Registry{variants: make(map[string]factory)}
	r.register("dole", doleVariant)
	r.register("burrell", burrellVariant)
	r.register("fogg", foggVariant)
	r.register("folkins", folkinsVariant)
	return r
}

func (r *Registry) register(name string, f factory) {
	r.variants[name] = f
}

// Get resolves a variant by name.
func (r *Registry) Get(name string) (Profile, error) {
	f, ok := r.variants[name]
	if !ok {
		return Profile{}, fmt.Errorf("profile: unknown variant %q", name)
	}
	return Profile{Name: name, Constants: f()}, nil
}

// Names lists every known variant.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.variants))
	for name := range r.variants {
		names = append(names, name)
	}
	return names
}

func doleVariant() constants.DoleConstants {
	return constants.DefaultDoleConstants()
}

// burrellVariant widens the dust-density falloff.
func burrellVariant() constants.DoleConstants {
	c := constants.DefaultDoleConstants()
	c.AlphaCoeff = 3.5
	c.GammaCoeff = 2.0
	return c
}

func foggVariant() constants.DoleConstants {
	c := constants.DefaultDoleConstants()
	c.BCoeff = 1.0e-5
	c.KCoeff = 50.0
	return c
}

func folkinsVariant() constants.DoleConstants {
	c := constants.DefaultDoleConstants()
	c.KCoeff = 65.0
	c.DustDensityCoeff *= 1.5
	return c
}
