package export

import (
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/planetgen/internal/accretion"
)

// BatchSummary aggregates per-seed outcomes across a batch run.
type BatchSummary struct {
	Runs             int
	MeanPlanets      float64
	StdDevPlanets    float64
	MinPlanets       int
	MaxPlanets       int
	MeanMergedNuclei float64
}

// Summarize computes a BatchSummary over results. An empty results slice
// yields a zero-value summary with Runs == 0.
func Summarize(results []*accretion.Result) BatchSummary {
	if len(results) == 0 {
		return BatchSummary{}
	}

	planetCounts := make([]float64, len(results))
	mergedCounts := make([]float64, len(results))
	minPlanets, maxPlanets := len(results[0].Planets), len(results[0].Planets)

	for i, r := range results {
		n := len(r.Planets)
		planetCounts[i] = float64(n)
		mergedCounts[i] = float64(r.Stats.MergedNuclei)
		if n < minPlanets {
			minPlanets = n
		}
		if n > maxPlanets {
			maxPlanets = n
		}
	}

	mean, stddev := stat.MeanStdDev(planetCounts, nil)

	return BatchSummary{
		Runs:             len(results),
		MeanPlanets:      mean,
		StdDevPlanets:    stddev,
		MinPlanets:       minPlanets,
		MaxPlanets:       maxPlanets,
		MeanMergedNuclei: stat.Mean(mergedCounts, nil),
	}
}
