// Package uwp classifies a finished planet into a Traveller-RPG-style
// Universal World Profile: a short digit code summarizing size,
// atmosphere, hydrographics, and habitability.
package uwp

import (
	"fmt"
	"math"

	"github.com/san-kum/planetgen/internal/ecosphere"
	"github.com/san-kum/planetgen/internal/protoplanet"
	"github.com/san-kum/planetgen/internal/star"
	"github.com/san-kum/planetgen/internal/units"
)

// UWP is the four-digit profile: size, atmosphere, hydrographics,
// habitability, each 0-9.
type UWP struct {
	Size          int
	Atmosphere    int
	Hydrographics int
	Habitability  int
}

func (u UWP) String() string {
	return fmt.Sprintf("%d%d%d%d", u.Size, u.Atmosphere, u.Hydrographics, u.Habitability)
}

// atmosphereCode maps ecosphere.SimpleAtmosphere's classification to a
// digit, loosely following Traveller's atmosphere table.
var atmosphereCode = map[string]int{
	"none":               0,
	"thin":               3,
	"dense":              6,
	"gas-giant-envelope": 9,
}

// Classify derives a UWP from p's mass, axis, and gas-giant status.
func Classify(p protoplanet.ProtoPlanet, isGasGiant bool, s star.Star) UWP {
	massEarth := units.SolarMassToEarthMass(p.Mass)

	size := sizeCode(massEarth, isGasGiant)
	atmo := atmosphereCode[ecosphere.SimpleAtmosphere(p, isGasGiant, s)]
	hydro := hydrographicsCode(atmo, isGasGiant)
	hab := 0
	if ecosphere.IsHabitable(p, isGasGiant, s) {
		hab = 1
	}

	return UWP{Size: size, Atmosphere: atmo, Hydrographics: hydro, Habitability: hab}
}

// sizeCode buckets mass in Earth masses onto a 0-9 log scale; gas giants
// are pinned to the top of the scale regardless of mass.
func sizeCode(massEarth float64, isGasGiant bool) int {
	if isGasGiant {
		return 9
	}
	if massEarth <= 0 {
		return 0
	}
	code := int(math.Log10(massEarth) + 3) // 10^-3 Earth masses (about 1/12 of the Moon) maps to 0
	if code < 0 {
		code = 0
	}
	if code > 8 {
		code = 8
	}
	return code
}

// hydrographicsCode is a coarse guess: a dense/thin atmosphere allows
// liquid water to pool, a gas giant or no atmosphere does not.
func hydrographicsCode(atmosphereDigit int, isGasGiant bool) int {
	if isGasGiant {
		return 0
	}
	switch {
	case atmosphereDigit >= 6:
		return 7
	case atmosphereDigit >= 3:
		return 3
	default:
		return 0
	}
}
