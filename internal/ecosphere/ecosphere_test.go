package ecosphere_test

import (
	"testing"

	"github.com/san-kum/planetgen/internal/ecosphere"
	"github.com/san-kum/planetgen/internal/protoplanet"
	"github.com/san-kum/planetgen/internal/star"
)

func TestGreenhouseRadiusIsFractionOfEcosphere(t *testing.T) {
	s := star.NewSol()
	eco := ecosphere.EcosphereRadius(s)
	green := ecosphere.GreenhouseRadius(s)
	if green >= eco {
		t.Errorf("expected greenhouse radius < ecosphere radius, got %f >= %f", green, eco)
	}
}

func TestIsHabitableRejectsGasGiants(t *testing.T) {
	s := star.NewSol()
	p := protoplanet.New(ecosphere.EcosphereRadius(s), 0, 1e-3)
	if ecosphere.IsHabitable(p, true, s) {
		t.Error("expected gas giant to never be habitable")
	}
}

func TestIsHabitableAcceptsEcosphereOrbit(t *testing.T) {
	s := star.NewSol()
	p := protoplanet.New(ecosphere.EcosphereRadius(s), 0, 1e-6)
	if !ecosphere.IsHabitable(p, false, s) {
		t.Error("expected a planet at the ecosphere radius to be habitable")
	}
}
