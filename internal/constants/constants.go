// Package constants holds the accretion engine's tunable physical
// constants and their YAML config loading.
package constants

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DoleConstants bundles every tunable parameter the geometry, insertion, and
// driver components read. A DoleConstants value is immutable once handed to
// a driver run.
type DoleConstants struct {
	InnermostPlanet   float64 `yaml:"innermost_planet"`
	OutermostPlanet   float64 `yaml:"outermost_planet"`
	ProtoplanetMass   float64 `yaml:"protoplanet_mass"`
	EccentricityCoeff float64 `yaml:"eccentricity_coeff"`
	RandomisedCount   int     `yaml:"randomised_count"`

	DustDensityCoeff float64 `yaml:"dust_density_coeff"` // A
	AlphaCoeff       float64 `yaml:"alpha_coeff"`        // alpha
	GammaCoeff       float64 `yaml:"gamma_coeff"`        // gamma
	BCoeff           float64 `yaml:"b_coeff"`             // critical-mass scalar B
	KCoeff           float64 `yaml:"k_coeff"`             // gas/dust ratio K

	AccreteContinueThreshold float64 `yaml:"accrete_continue_threshold"`
	MaxInjectionsWithoutTerm int     `yaml:"max_injections_without_term"`
}

// DefaultDoleConstants returns the classic Dole/Fogg parameter set.
func DefaultDoleConstants() DoleConstants {
	return DoleConstants{
		InnermostPlanet:   0.3,
		OutermostPlanet:   50.0,
		ProtoplanetMass:   1.0e-15,
		EccentricityCoeff: 0.077,
		RandomisedCount:   20,

		DustDensityCoeff: 2.0e-3,
		AlphaCoeff:       5.0,
		GammaCoeff:       3.0,
		BCoeff:           1.2e-5,
		KCoeff:           50.0,

		AccreteContinueThreshold: 1.0e-4,
		MaxInjectionsWithoutTerm: 10000,
	}
}

// Validate rejects constant sets that are a programmer error rather than a
// run-time outcome.
func (c DoleConstants) Validate() error {
	if c.InnermostPlanet <= 0 || c.OutermostPlanet <= 0 {
		return &ConfigError{Message: "innermost_planet and outermost_planet must be positive"}
	}
	if c.InnermostPlanet >= c.OutermostPlanet {
		return &ConfigError{Message: "innermost_planet must be less than outermost_planet"}
	}
	if c.ProtoplanetMass <= 0 {
		return &ConfigError{Message: "protoplanet_mass must be positive"}
	}
	if c.EccentricityCoeff <= 0 {
		return &ConfigError{Message: "eccentricity_coeff must be positive"}
	}
	if c.DustDensityCoeff <= 0 || c.AlphaCoeff <= 0 || c.GammaCoeff <= 0 || c.BCoeff <= 0 || c.KCoeff <= 0 {
		return &ConfigError{Message: "dust/critical-mass coefficients must be positive"}
	}
	return nil
}

// ConfigError marks a configuration error: a programmer mistake detected at
// construction time, never a runtime condition.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string { return "constants: " + e.Message }

// Load reads a DoleConstants from a YAML file, starting from the defaults
// for any field the file omits.
func Load(path string) (DoleConstants, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DoleConstants{}, err
	}
	c := DefaultDoleConstants()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return DoleConstants{}, err
	}
	return c, nil
}

// Save writes c to path as YAML.
func Save(path string, c DoleConstants) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
