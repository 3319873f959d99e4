package forecast

import (
	"math/rand"
	"time"
)

// APIVersion is echoed in every result's metadata.
const APIVersion = "1.0.0"

// Engine runs the Monte-Carlo revenue simulation pipeline:
// filter → sample → aggregate → assemble. It holds no mutable state, so a
// single Engine may serve concurrent requests without locking.
type Engine struct {
	histogramBuckets int
}

// NewEngine creates an engine that bins outcome histograms into
// histogramBuckets equal-width buckets.
func NewEngine(histogramBuckets int) *Engine {
	if histogramBuckets < 1 {
		histogramBuckets = 1
	}
	return &Engine{histogramBuckets: histogramBuckets}
}

// Params are the per-call simulation inputs. Defaults (simulation count,
// preset targets) are resolved by the caller before Run; the engine never
// invents values. Today supplies the clock for horizon filtering.
type Params struct {
	NumSimulations  int
	TimeHorizonDays *int
	RevenueTargets  []float64
	Today           time.Time
}

// Metadata describes the simulation run itself.
type Metadata struct {
	NumSimulations        int       `json:"num_simulations"`
	OpportunitiesIncluded int       `json:"opportunities_included"`
	OpportunitiesFiltered int       `json:"opportunities_filtered_out"`
	ComputeTimeMS         float64   `json:"compute_time_ms"`
	Timestamp             time.Time `json:"timestamp"`
	TimeHorizonDays       *int      `json:"time_horizon_days"`
	APIVersion            string    `json:"api_version"`
}

// Result is the complete simulation output. It is built fresh per call and
// never mutated afterwards.
type Result struct {
	SummaryStatistics Summary          `json:"summary_statistics"`
	TargetAnalysis    []TargetAnalysis `json:"target_analysis"`
	HistogramBuckets  []Bucket         `json:"histogram_buckets"`
	Metadata          Metadata         `json:"metadata"`
}

// Run executes one full simulation. Each call owns its own RNG stream seeded
// from the wall clock; nothing is shared across calls.
func (e *Engine) Run(opps []Opportunity, p Params) *Result {
	filtered := FilterByHorizon(opps, p.TimeHorizonDays, p.Today)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Compute time covers sampling and aggregation only, not input handling.
	start := time.Now()
	totals := runTrials(rng, filtered.Included, p.NumSimulations)
	summary := summarize(totals, filtered.Included)
	targets := analyzeTargets(totals, p.RevenueTargets)
	histogram := buildHistogram(totals, e.histogramBuckets)
	elapsed := time.Since(start)

	return &Result{
		SummaryStatistics: summary,
		TargetAnalysis:    targets,
		HistogramBuckets:  histogram,
		Metadata: Metadata{
			NumSimulations:        p.NumSimulations,
			OpportunitiesIncluded: len(filtered.Included),
			OpportunitiesFiltered: filtered.Excluded,
			ComputeTimeMS:         round2(float64(elapsed.Microseconds()) / 1000),
			Timestamp:             time.Now().UTC(),
			TimeHorizonDays:       p.TimeHorizonDays,
			APIVersion:            APIVersion,
		},
	}
}
