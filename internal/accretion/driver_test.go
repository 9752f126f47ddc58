package accretion

import (
	"testing"

	"github.com/san-kum/planetgen/internal/constants"
	"github.com/san-kum/planetgen/internal/rng"
	"github.com/san-kum/planetgen/internal/star"
)

func newTestDriver(t *testing.T) *Driver {
	t.Helper()
	d, err := New(star.NewSol(), constants.DefaultDoleConstants(), rng.NewLCG(0), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d
}

func TestGenerateSystemTerminates(t *testing.T) {
	d := newTestDriver(t)
	seed := uint64(1)
	result, err := d.GenerateSystem(&seed)
	if err != nil {
		t.Fatalf("GenerateSystem: %v", err)
	}
	if len(result.Planets) < 1 {
		t.Fatalf("expected at least one planet, got %d", len(result.Planets))
	}
	if result.Stats.InjectedNuclei < len(result.Planets) {
		t.Errorf("injected_nuclei (%d) should be >= planet count (%d)", result.Stats.InjectedNuclei, len(result.Planets))
	}
}

func TestGenerateSystemReproducible(t *testing.T) {
	seed := uint64(1662642772940)

	d1 := newTestDriver(t)
	result1, err := d1.GenerateSystem(&seed)
	if err != nil {
		t.Fatalf("GenerateSystem (run 1): %v", err)
	}

	d2 := newTestDriver(t)
	result2, err := d2.GenerateSystem(&seed)
	if err != nil {
		t.Fatalf("GenerateSystem (run 2): %v", err)
	}

	if len(result1.Planets) != len(result2.Planets) {
		t.Fatalf("planet count differs between runs: %d vs %d", len(result1.Planets), len(result2.Planets))
	}
	for i := range result1.Planets {
		a, b := result1.Planets[i], result2.Planets[i]
		if a.Axis != b.Axis || a.Ecc != b.Ecc || a.Mass != b.Mass {
			t.Fatalf("planet %d differs between runs: %+v vs %+v", i, a, b)
		}
	}
	if result1.Stats != result2.Stats {
		// ElapsedMs is wall-clock and legitimately differs; compare the
		// reproducibility-relevant counters only.
		if result1.Stats.InjectedNuclei != result2.Stats.InjectedNuclei ||
			result1.Stats.MergedNuclei != result2.Stats.MergedNuclei {
			t.Fatalf("stats differ between runs: %+v vs %+v", result1.Stats, result2.Stats)
		}
	}
}

// TestGenerateSystemGoldenSeedPlanetCount is a coarse self-check against
// the documented reference run for seed 1_662_642_772_940: the reference
// run produces exactly 12 planets. This only pins the count, not the
// per-planet axis/ecc/mass values, since those depend on bit-exact formula
// fidelity that has never been checked against a retrieved reference
// implementation (see DESIGN.md).
func TestGenerateSystemGoldenSeedPlanetCount(t *testing.T) {
	d := newTestDriver(t)
	seed := uint64(1662642772940)
	result, err := d.GenerateSystem(&seed)
	if err != nil {
		t.Fatalf("GenerateSystem: %v", err)
	}
	const want = 12
	if len(result.Planets) != want {
		t.Errorf("seed %d: got %d planets, want %d", seed, len(result.Planets), want)
	}
}

func TestGenerateSystemPlanetsWithinDiscBounds(t *testing.T) {
	d := newTestDriver(t)
	seed := uint64(0)
	result, err := d.GenerateSystem(&seed)
	if err != nil {
		t.Fatalf("GenerateSystem: %v", err)
	}

	c := constants.DefaultDoleConstants()
	for _, p := range result.Planets {
		if p.Axis < c.InnermostPlanet*0.5 || p.Axis > c.OutermostPlanet*1.5 {
			// merged axes are a mass-weighted mean of two in-range axes so
			// they stay within range too, however long the merge chain;
			// this check only flags axes far outside the range.
			t.Errorf("planet axis %f far outside disc bounds [%f, %f]", p.Axis, c.InnermostPlanet, c.OutermostPlanet)
		}
	}
}

func TestGenerateSystemPlanetsSortedByAxis(t *testing.T) {
	d := newTestDriver(t)
	seed := uint64(42)
	result, err := d.GenerateSystem(&seed)
	if err != nil {
		t.Fatalf("GenerateSystem: %v", err)
	}
	for i := 1; i < len(result.Planets); i++ {
		if result.Planets[i].Axis <= result.Planets[i-1].Axis {
			t.Errorf("planets not strictly sorted by axis at index %d", i)
		}
	}
}
