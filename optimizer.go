package main

import (
	"math"
	"math/rand"
	"time"
)

// DefaultSampleCount is the number of random trials per optimizer run
const DefaultSampleCount = 1000

// Optimizer sampling ranges. Down payments come from a small discrete set;
// the move year is an integer in [2, 8); occupancy is uniform in [0.45, 0.80).
var optimizerDownPayments = []float64{0.05, 0.10, 0.20}

const (
	optimizerMoveYearMin  = 2
	optimizerMoveYearMax  = 8 // exclusive
	optimizerOccupancyMin = 0.45
	optimizerOccupancyMax = 0.80 // exclusive
)

// Optimize searches for the (down payment, move year, occupancy) combination
// that maximizes the terminal investment balance over the default horizon.
//
// This is an unseeded best-of-N heuristic: repeated runs may return different
// winners and there is no guarantee of global optimality. Ties keep the first
// maximum encountered. Nothing is retained for losing trials.
func Optimize(params SimulationParams, sampleCount int) OptimizerResult {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return optimizeWithRand(params, sampleCount, rng)
}

func optimizeWithRand(params SimulationParams, sampleCount int, rng *rand.Rand) OptimizerResult {
	best := OptimizerResult{FinalBalance: math.Inf(-1)}

	for i := 0; i < sampleCount; i++ {
		downPct := optimizerDownPayments[rng.Intn(len(optimizerDownPayments))]
		moveYear := optimizerMoveYearMin + rng.Intn(optimizerMoveYearMax-optimizerMoveYearMin)
		occupancy := optimizerOccupancyMin + rng.Float64()*(optimizerOccupancyMax-optimizerOccupancyMin)

		projection := Project(params, DefaultHorizonYears, Overrides{
			DownPaymentPct: &downPct,
			MoveYear:       &moveYear,
			Occupancy:      &occupancy,
		})

		if final := projection.FinalBalance(); final > best.FinalBalance {
			best = OptimizerResult{
				DownPaymentPct: downPct,
				MoveYear:       moveYear,
				Occupancy:      occupancy,
				FinalBalance:   final,
			}
		}
	}

	return best
}
