// Package accretion implements the accretion driver: the state machine that
// drives the dust disc to exhaustion by injecting, sweeping, and merging
// protoplanets. This is the core of the generator; every other package is a
// pure calculator the driver calls into.
package accretion

import (
	"log/slog"
	"time"

	"github.com/san-kum/planetgen/internal/collision"
	"github.com/san-kum/planetgen/internal/constants"
	"github.com/san-kum/planetgen/internal/dustdisc"
	"github.com/san-kum/planetgen/internal/geometry"
	"github.com/san-kum/planetgen/internal/insertion"
	"github.com/san-kum/planetgen/internal/protoplanet"
	"github.com/san-kum/planetgen/internal/rng"
	"github.com/san-kum/planetgen/internal/star"
)

// Driver owns the dust-band sequence, the planetesimal list, the stats, and
// the random source for the duration of one GenerateSystem call. It is not
// safe for concurrent use; run independent seeds through independent
// Drivers (see Batch).
type Driver struct {
	calc      *geometry.Calculator
	strategy  *insertion.Strategy
	constants constants.DoleConstants
	source    rng.Source
	logger    *slog.Logger
}

// New validates c and builds a Driver for star s. Bad constants are a
// programmer error, detected here rather than mid-run.
func New(s star.Star, c constants.DoleConstants, source rng.Source, logger *slog.Logger) (*Driver, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{
		calc:      geometry.New(s, c),
		strategy:  insertion.New(c),
		constants: c,
		source:    source,
		logger:    logger,
	}, nil
}

// GenerateSystem runs one INIT -> SEEDED -> LOOP -> TERMINAL pass. If seed
// is nil, wall-clock milliseconds seed the run. The returned Result is
// always non-nil, even when err is ErrRunaway, so a caller can inspect the
// partial planet list.
func (d *Driver) GenerateSystem(seed *uint64) (*Result, error) {
	start := time.Now()

	var s uint64
	if seed != nil {
		s = *seed
	} else {
		s = uint64(time.Now().UnixMilli())
	}
	d.source.SetSeed(s)

	stats := Stats{}
	bands := dustdisc.Initial(d.calc.OuterDustLimit())
	list := newPlanetesimalList(d.calc)

	innermost := d.constants.InnermostPlanet
	outermost := d.constants.OutermostPlanet

	injected := 0
	for dustdisc.IsDustAvailable(bands, innermost, outermost) {
		if injected >= d.constants.MaxInjectionsWithoutTerm {
			d.logger.Warn("accretion: runaway loop, aborting run", "injections", injected)
			stats.ElapsedMs = time.Since(start).Milliseconds()
			return &Result{Seed: s, Stats: stats, Planets: list.snapshot()}, ErrRunaway
		}

		axis, ok := d.strategy.SemiMajorAxis(injected, bands, d.source)
		if !ok {
			break
		}
		ecc := d.strategy.Eccentricity(d.source)
		proto := protoplanet.New(axis, ecc, d.constants.ProtoplanetMass)
		injected++
		stats.InjectedNuclei++

		proto = d.sweep(proto, bands)

		if proto.Mass <= d.constants.ProtoplanetMass {
			d.logger.Debug("accretion: rejected undersized candidate", "axis", proto.Axis, "mass", proto.Mass)
			continue
		}

		// MAYBE_MERGE. A single injected body may gravitationally overlap
		// more than one existing neighbor once its mass has grown; keep
		// folding in the first overlap found until the candidate coexists
		// cleanly with every neighbor.
		final := proto
		for {
			idx, found := list.firstOverlap(final)
			if !found {
				break
			}
			stats.MergedNuclei++
			merged := collision.Merge(list.planets[idx], final)
			final = d.sweep(merged, bands)
			list.remove(idx)
			d.logger.Info("accretion: merged protoplanets", "axis", final.Axis, "mass", final.Mass)
		}
		list.insertSorted(final)
		d.logger.Info("accretion: injected protoplanet", "axis", final.Axis, "mass", final.Mass)
		bands = dustdisc.Merge(dustdisc.Split(bands, d.calc, final, !d.calc.IsGasGiant(final)))
	}

	stats.ElapsedMs = time.Since(start).Milliseconds()
	return &Result{Seed: s, Stats: stats, Planets: list.snapshot()}, nil
}

// sweep repeatedly accumulates swept mass across every overlapping band
// until the relative mass gain falls below the continue threshold.
func (d *Driver) sweep(proto protoplanet.ProtoPlanet, bands []dustdisc.DustBand) protoplanet.ProtoPlanet {
	for {
		last := proto.Mass
		next := 0.0

		for _, b := range bands {
			density := 0.0
			if b.HasDust {
				density = d.calc.DustDensity(proto.Axis)
			}
			if b.HasGas && d.calc.IsGasGiant(proto) {
				critMass := d.calc.CriticalMass(proto.Axis, proto.Ecc)
				density = d.calc.DustAndGasDensity(density, critMass, proto.Mass)
			}
			next += density * d.calc.BandVolume(proto, b.Inner, b.Outer)
		}

		if next < last {
			next = last
		}
		proto = proto.WithMass(next)

		if last == 0 || (next-last)/last <= d.constants.AccreteContinueThreshold {
			break
		}
	}
	return proto
}
