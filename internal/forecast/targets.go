package forecast

import (
	"fmt"
	"slices"
)

// TargetAnalysis is the estimated probability of meeting or exceeding one
// revenue target across all trials.
type TargetAnalysis struct {
	Target         float64 `json:"target"`
	Probability    float64 `json:"probability"`
	ProbabilityPct string  `json:"probability_pct"`
}

// analyzeTargets reports, for each requested target, the fraction of trials
// whose total met or exceeded it. Targets come back sorted ascending, so the
// probabilities read monotonically non-increasing.
func analyzeTargets(totals []float64, targets []float64) []TargetAnalysis {
	sorted := make([]float64, len(targets))
	copy(sorted, targets)
	slices.Sort(sorted)

	results := make([]TargetAnalysis, 0, len(sorted))
	for _, target := range sorted {
		hits := 0
		for _, total := range totals {
			if total >= target {
				hits++
			}
		}
		probability := 0.0
		if len(totals) > 0 {
			probability = float64(hits) / float64(len(totals))
		}
		results = append(results, TargetAnalysis{
			Target:         round2(target),
			Probability:    round4(probability),
			ProbabilityPct: fmt.Sprintf("%.1f%%", probability*100),
		})
	}
	return results
}
