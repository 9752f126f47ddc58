package accretion

import (
	"sort"

	"github.com/san-kum/planetgen/internal/geometry"
	"github.com/san-kum/planetgen/internal/protoplanet"
)

// planetesimalList is the driver-owned, ascending-axis-ordered set of
// surviving protoplanets. Two protoplanets never coexist with overlapping
// gravitational annuli; insertion that would violate this triggers a merge
// instead, handled by the caller.
type planetesimalList struct {
	calc    *geometry.Calculator
	planets []protoplanet.ProtoPlanet
}

func newPlanetesimalList(calc *geometry.Calculator) *planetesimalList {
	return &planetesimalList{calc: calc}
}

// tooClose reports whether p and q's sweep annuli intersect, accounting for
// which one is the inner body. Uses the same annulus SWEEP draws mass from
// rather than a separately widened one: two bodies whose orbits don't
// already reach each other's mass can't meaningfully collide.
func (l *planetesimalList) tooClose(p, q protoplanet.ProtoPlanet) bool {
	pInner, pOuter := l.calc.InnerSweepLimit(p), l.calc.OuterSweepLimit(p)
	qInner, qOuter := l.calc.InnerSweepLimit(q), l.calc.OuterSweepLimit(q)

	if p.Axis > q.Axis {
		return pInner < q.Axis || qOuter > p.Axis
	}
	return pOuter > q.Axis || qInner < p.Axis
}

// firstOverlap scans in ascending-axis order for the first neighbor whose
// gravitational annulus overlaps candidate's, per the driver's
// deterministic first-overlap rule.
func (l *planetesimalList) firstOverlap(candidate protoplanet.ProtoPlanet) (index int, found bool) {
	for i, p := range l.planets {
		if l.tooClose(p, candidate) {
			return i, true
		}
	}
	return -1, false
}

// insertSorted inserts proto at its sorted position by axis.
func (l *planetesimalList) insertSorted(proto protoplanet.ProtoPlanet) {
	i := sort.Search(len(l.planets), func(i int) bool {
		return l.planets[i].Axis >= proto.Axis
	})
	l.planets = append(l.planets, protoplanet.ProtoPlanet{})
	copy(l.planets[i+1:], l.planets[i:])
	l.planets[i] = proto
}

// remove drops the planet at index, used when it has just been folded into
// a merge and its successor will be (re)inserted separately.
func (l *planetesimalList) remove(index int) {
	l.planets = append(l.planets[:index], l.planets[index+1:]...)
}

func (l *planetesimalList) snapshot() []protoplanet.ProtoPlanet {
	out := make([]protoplanet.ProtoPlanet, len(l.planets))
	copy(out, l.planets)
	return out
}
