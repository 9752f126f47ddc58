package star_test

import (
	"testing"

	"github.com/san-kum/planetgen/internal/rng"
	"github.com/san-kum/planetgen/internal/star"
)

func TestNewSol(t *testing.T) {
	s := star.NewSol()
	if s.Mass != 1.0 || s.Luminosity != 1.0 {
		t.Errorf("expected sol mass/luminosity of 1.0, got %+v", s)
	}
}

func TestNewRandomStarWithinMainSequence(t *testing.T) {
	source := rng.NewLCG(5)
	for i := 0; i < 50; i++ {
		s := star.NewRandomStar(source)
		if s.Mass <= 0 || s.Luminosity <= 0 {
			t.Fatalf("expected positive mass/luminosity, got %+v", s)
		}
		if s.Age < 0 {
			t.Fatalf("expected non-negative age, got %+v", s)
		}
	}
}
