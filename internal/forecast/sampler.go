package forecast

import "math/rand"

// runTrials draws the full N-trial outcome vector. For each trial and each
// opportunity an independent uniform draw in [0,1) decides the win: the deal
// is won iff draw < probability, so p=0 never wins and p=1 always wins.
//
// The loop runs opportunity-major with a running total per trial, which keeps
// transient memory at O(trials) instead of O(trials × deals).
func runTrials(rng *rand.Rand, opps []Opportunity, trials int) []float64 {
	totals := make([]float64, trials)
	if len(opps) == 0 {
		// No deals means certain zero revenue, not an error. No draws happen.
		return totals
	}

	for _, o := range opps {
		for t := 0; t < trials; t++ {
			if rng.Float64() < o.Probability {
				totals[t] += o.Amount
			}
		}
	}

	return totals
}
