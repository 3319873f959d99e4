package forecast

import (
	"math/rand"
	"testing"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestRunTrials_CertainDealsAlwaysWon(t *testing.T) {
	opps := []Opportunity{
		{Amount: 1_000_000, Probability: 1.0},
		{Amount: 500_000, Probability: 1.0},
	}

	totals := runTrials(testRNG(), opps, 1000)

	for i, total := range totals {
		if total != 1_500_000 {
			t.Fatalf("Trial %d: expected exactly 1500000 for all-certain deals, got %v", i, total)
		}
	}
}

func TestRunTrials_ImpossibleDealsNeverWon(t *testing.T) {
	opps := []Opportunity{
		{Amount: 1_000_000, Probability: 0.0},
	}

	totals := runTrials(testRNG(), opps, 1000)

	for i, total := range totals {
		if total != 0 {
			t.Fatalf("Trial %d: expected 0 for impossible deal, got %v", i, total)
		}
	}
}

func TestRunTrials_NoOpportunitiesReturnsZeros(t *testing.T) {
	totals := runTrials(testRNG(), nil, 500)

	if len(totals) != 500 {
		t.Fatalf("Expected 500 trials, got %d", len(totals))
	}
	for i, total := range totals {
		if total != 0 {
			t.Fatalf("Trial %d: expected 0 with no opportunities, got %v", i, total)
		}
	}
}

func TestRunTrials_OutcomesBoundedByPipeline(t *testing.T) {
	opps := []Opportunity{
		{Amount: 100_000, Probability: 0.3},
		{Amount: 250_000, Probability: 0.7},
		{Amount: 50_000, Probability: 0.5},
	}
	pipeline := 400_000.0

	totals := runTrials(testRNG(), opps, 2000)

	for i, total := range totals {
		if total < 0 || total > pipeline {
			t.Fatalf("Trial %d: total %v outside [0, %v]", i, total, pipeline)
		}
	}
}

func TestRunTrials_MeanTracksExpectedValue(t *testing.T) {
	opps := []Opportunity{
		{Amount: 1_000_000, Probability: 0.5},
	}

	totals := runTrials(testRNG(), opps, 100_000)

	m := mean(totals)
	// Standard error at this N is ~1.6K; 20K is a very comfortable margin.
	if m < 480_000 || m > 520_000 {
		t.Errorf("Expected mean near 500000, got %v", m)
	}
}
