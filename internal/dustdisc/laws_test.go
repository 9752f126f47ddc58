package dustdisc_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/planetgen/internal/dustdisc"
	"github.com/san-kum/planetgen/internal/protoplanet"
)

func measure(bands []dustdisc.DustBand) float64 {
	total := 0.0
	for _, b := range bands {
		total += b.Outer - b.Inner
	}
	return total
}

var _ = Describe("dust band list laws", func() {
	It("is idempotent: Merge(Merge(x)) == Merge(x)", func() {
		bands := []dustdisc.DustBand{
			{Inner: 0, Outer: 1, HasDust: true, HasGas: true},
			{Inner: 1, Outer: 2, HasDust: true, HasGas: true},
			{Inner: 2, Outer: 3, HasDust: false, HasGas: true},
			{Inner: 3, Outer: 4, HasDust: false, HasGas: false},
		}
		once := dustdisc.Merge(bands)
		twice := dustdisc.Merge(once)
		Expect(twice).To(Equal(once))
	})

	It("leaves bands unchanged when the protoplanet's sweep annulus is disjoint from all of them", func() {
		bands := dustdisc.Initial(10)
		// sweep annulus [20, 21) lies entirely outside [0, 10).
		calc := fakeLimits{inner: 20, outer: 21}
		proto := protoplanet.New(20.5, 0, 1)

		split := dustdisc.Split(bands, calc, proto, true)
		Expect(split).To(Equal(bands))
		Expect(dustdisc.Merge(split)).To(Equal(bands))
	})

	It("preserves total radial measure across split then merge", func() {
		bands := dustdisc.Initial(10)
		calc := fakeLimits{inner: 2, outer: 6}
		proto := protoplanet.New(4, 0, 1)

		before := measure(bands)
		split := dustdisc.Split(bands, calc, proto, true)
		after := measure(dustdisc.Merge(split))

		Expect(after).To(BeNumerically("~", before, 1e-9))
	})
})
