// Package dustdisc implements the dust-band list operations: splitting the
// disc around a newly-accreted protoplanet, merging adjacent like bands
// back together, and querying whether dust remains in a range. All three
// are single-pass traversals over an ordered slice of bands.
package dustdisc

import "github.com/san-kum/planetgen/internal/protoplanet"

// DustBand is a radial annulus of the disc. inner_edge < outer_edge always
// holds for a well-formed band.
type DustBand struct {
	Inner   float64
	Outer   float64
	HasDust bool
	HasGas  bool
}

// Initial returns the single starting band [0, outerDustLimit] with both
// dust and gas present.
func Initial(outerDustLimit float64) []DustBand {
	return []DustBand{{Inner: 0, Outer: outerDustLimit, HasDust: true, HasGas: true}}
}

// LimitsFor is satisfied by anything that can report a protoplanet's sweep
// annulus — in practice *geometry.Calculator.
type LimitsFor interface {
	InnerSweepLimit(p protoplanet.ProtoPlanet) float64
	OuterSweepLimit(p protoplanet.ProtoPlanet) float64
}

// Split partitions bands around proto's sweep annulus. retainGas is the
// caller's ¬proto.IsGasGiant: gas giants strip gas from every band they
// touch, sub-critical bodies leave gas behind for later bodies.
func Split(bands []DustBand, calc LimitsFor, proto protoplanet.ProtoPlanet, retainGas bool) []DustBand {
	sweepInner := calc.InnerSweepLimit(proto)
	sweepOuter := calc.OuterSweepLimit(proto)
	return split(bands, sweepInner, sweepOuter, retainGas)
}

func split(bands []DustBand, sweepInner, sweepOuter float64, retainGas bool) []DustBand {
	out := make([]DustBand, 0, len(bands)+2)

	for _, b := range bands {
		switch {
		case b.Outer <= sweepInner || b.Inner >= sweepOuter:
			// case 1: fully outside the sweep annulus.
			out = append(out, b)

		case sweepInner <= b.Inner && sweepOuter >= b.Outer:
			// case 5: band fully inside sweep annulus.
			out = append(out, DustBand{Inner: b.Inner, Outer: b.Outer, HasDust: false, HasGas: b.HasGas && retainGas})

		case sweepInner > b.Inner && sweepOuter < b.Outer:
			// case 2: sweep annulus strictly inside band, three pieces.
			out = append(out, DustBand{Inner: b.Inner, Outer: sweepInner, HasDust: b.HasDust, HasGas: b.HasGas})
			out = append(out, DustBand{Inner: sweepInner, Outer: sweepOuter, HasDust: false, HasGas: b.HasGas && retainGas})
			out = append(out, DustBand{Inner: sweepOuter, Outer: b.Outer, HasDust: b.HasDust, HasGas: b.HasGas})

		case sweepInner <= b.Inner:
			// case 4: sweep overlaps band's inner edge only.
			out = append(out, DustBand{Inner: b.Inner, Outer: sweepOuter, HasDust: false, HasGas: b.HasGas && retainGas})
			out = append(out, DustBand{Inner: sweepOuter, Outer: b.Outer, HasDust: b.HasDust, HasGas: b.HasGas})

		default:
			// case 3: sweep overlaps band's outer edge only.
			out = append(out, DustBand{Inner: b.Inner, Outer: sweepInner, HasDust: b.HasDust, HasGas: b.HasGas})
			out = append(out, DustBand{Inner: sweepInner, Outer: b.Outer, HasDust: false, HasGas: b.HasGas && retainGas})
		}
	}

	return out
}

// Merge collapses adjacent bands with equal (HasDust, HasGas) into one,
// left to right, in a single pass. Idempotent: Merge(Merge(x)) == Merge(x).
func Merge(bands []DustBand) []DustBand {
	if len(bands) == 0 {
		return bands
	}

	out := make([]DustBand, 0, len(bands))
	cur := bands[0]

	for _, b := range bands[1:] {
		if b.HasDust == cur.HasDust && b.HasGas == cur.HasGas {
			cur.Outer = b.Outer
			continue
		}
		out = append(out, cur)
		cur = b
	}
	out = append(out, cur)

	return out
}

// IsDustAvailable reports whether any band with dust overlaps (inner, outer).
func IsDustAvailable(bands []DustBand, inner, outer float64) bool {
	for _, b := range bands {
		if b.HasDust && b.Outer > inner && b.Inner < outer {
			return true
		}
	}
	return false
}
