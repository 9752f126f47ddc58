package accretion

import "github.com/san-kum/planetgen/internal/protoplanet"

// Stats are the monotone counters the driver mutates during one run.
type Stats struct {
	InjectedNuclei int
	MergedNuclei   int
	ElapsedMs      int64
}

// Result is everything generate_system returns: the seed used, the final
// stats, and the planetesimal list sorted by ascending axis.
type Result struct {
	Seed    uint64
	Stats   Stats
	Planets []protoplanet.ProtoPlanet
}
