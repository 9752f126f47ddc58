package accretion

import (
	"log/slog"
	"sync"

	"github.com/san-kum/planetgen/internal/constants"
	"github.com/san-kum/planetgen/internal/rng"
	"github.com/san-kum/planetgen/internal/star"
)

// Batch runs numRuns independent GenerateSystem calls, each with its own
// Driver and its own seed starting at seedStart. Distinct seeds share no
// mutable state, so this is a trivial parallel fan-out: one goroutine per
// run.
type Batch struct {
	Star      star.Star
	Constants constants.DoleConstants
	Logger    *slog.Logger
	NewSource func() rng.Source
}

// Run executes numRuns systems seeded seedStart, seedStart+1, ...,
// seedStart+numRuns-1, returning results in seed order.
func (b *Batch) Run(numRuns int, seedStart uint64) ([]*Result, error) {
	results := make([]*Result, numRuns)
	errs := make([]error, numRuns)

	var wg sync.WaitGroup
	for i := 0; i < numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			seed := seedStart + uint64(idx)
			d, err := New(b.Star, b.Constants, b.NewSource(), b.Logger)
			if err != nil {
				errs[idx] = err
				return
			}
			results[idx], errs[idx] = d.GenerateSystem(&seed)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
