package forecast

import (
	"math"
	"slices"
)

// Summary holds descriptive statistics computed across all trial outcomes.
type Summary struct {
	Mean                  float64 `json:"mean"`
	Median                float64 `json:"median"`
	StdDev                float64 `json:"std_dev"`
	P10                   float64 `json:"p10"`
	P25                   float64 `json:"p25"`
	P75                   float64 `json:"p75"`
	P90                   float64 `json:"p90"`
	MinOutcome            float64 `json:"min_outcome"`
	MaxOutcome            float64 `json:"max_outcome"`
	TotalPipelineValue    float64 `json:"total_pipeline_value"`
	WeightedPipelineValue float64 `json:"weighted_pipeline_value"`
}

// summarize computes the outcome statistics plus the two non-sampled pipeline
// aggregates.
func summarize(totals []float64, opps []Opportunity) Summary {
	sorted := make([]float64, len(totals))
	copy(sorted, totals)
	slices.Sort(sorted)

	totalPipeline := 0.0
	weightedPipeline := 0.0
	for _, o := range opps {
		totalPipeline += o.Amount
		weightedPipeline += o.Amount * o.Probability
	}

	if len(sorted) == 0 {
		return Summary{
			TotalPipelineValue:    round2(totalPipeline),
			WeightedPipelineValue: round2(weightedPipeline),
		}
	}

	m := mean(totals)

	return Summary{
		Mean:                  m,
		Median:                percentile(sorted, 50),
		StdDev:                stdDev(totals, m),
		P10:                   percentile(sorted, 10),
		P25:                   percentile(sorted, 25),
		P75:                   percentile(sorted, 75),
		P90:                   percentile(sorted, 90),
		MinOutcome:            sorted[0],
		MaxOutcome:            sorted[len(sorted)-1],
		TotalPipelineValue:    round2(totalPipeline),
		WeightedPipelineValue: round2(weightedPipeline),
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdDev is the population standard deviation (divide by N). Zero for a
// single value.
func stdDev(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sumSq := 0.0
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)))
}

// percentile returns the p-th percentile of an already-sorted sample using
// linear interpolation between closest ranks: rank = p/100 × (n−1), then
// interpolate between the surrounding order statistics. For a single value
// every percentile is that value.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}

	rank := p / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
