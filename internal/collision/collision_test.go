package collision_test

import (
	"math"
	"testing"

	"github.com/san-kum/planetgen/internal/collision"
	"github.com/san-kum/planetgen/internal/protoplanet"
)

func TestCoalesceAxisIsMassWeightedMean(t *testing.T) {
	axis := collision.CoalesceAxis(1, 2, 3, 4)
	want := (1*2.0 + 3*4.0) / 4.0
	if math.Abs(axis-want) > 1e-12 {
		t.Errorf("got %f, want %f", axis, want)
	}
}

func TestCoalesceEccentricityClampsNegativeRadicand(t *testing.T) {
	// Two equal, circular (e=0) bodies at axis 1 coalesced onto a smaller
	// new axis (0.5) give a radicand of 1 - 2 = -1; it must clamp to a
	// valid, non-NaN eccentricity rather than produce NaN.
	e := collision.CoalesceEccentricity(1, 1, 0, 1, 1, 0, 0.5)
	if math.IsNaN(e) || e < 0 {
		t.Errorf("expected clamped non-negative eccentricity, got %f", e)
	}
}

func TestMergeSumsMass(t *testing.T) {
	a := protoplanet.New(1.0, 0.1, 2.0)
	b := protoplanet.New(2.0, 0.2, 3.0)
	merged := collision.Merge(a, b)
	if math.Abs(merged.Mass-5.0) > 1e-12 {
		t.Errorf("expected merged mass 5.0, got %f", merged.Mass)
	}
}
