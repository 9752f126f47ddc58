package uwp_test

import (
	"testing"

	"github.com/san-kum/planetgen/internal/protoplanet"
	"github.com/san-kum/planetgen/internal/star"
	"github.com/san-kum/planetgen/internal/uwp"
)

func TestClassifyGasGiantPinsSizeAndAtmosphere(t *testing.T) {
	s := star.NewSol()
	p := protoplanet.New(5.0, 0.05, 1e-3)
	profile := uwp.Classify(p, true, s)
	if profile.Size != 9 || profile.Atmosphere != 9 {
		t.Errorf("expected gas giant to read as size 9 / atmosphere 9, got %+v", profile)
	}
}

func TestClassifyStringIsFourDigits(t *testing.T) {
	s := star.NewSol()
	p := protoplanet.New(1.0, 0.02, 3e-6)
	profile := uwp.Classify(p, false, s)
	str := profile.String()
	if len(str) != 4 {
		t.Errorf("expected 4-digit UWP string, got %q", str)
	}
}
