package forecast

import "time"

// Opportunity is a single candidate deal: a monetary amount and an
// independent win probability. Identity is positional; any upstream ID is
// opaque pass-through and never enters the computation.
type Opportunity struct {
	Name        string
	Amount      float64
	Probability float64
	CloseDate   time.Time
}

// FilterResult is the subset of opportunities eligible for simulation plus
// the count of everything that was dropped.
type FilterResult struct {
	Included []Opportunity
	Excluded int
}

// FilterByHorizon selects the opportunities whose close date falls within
// [today, today+horizonDays]. A nil horizon keeps everything. Opportunities
// with a non-positive amount or a probability outside [0,1] are always
// dropped so they can never reach the sampler. A horizon of 0 keeps only
// same-day closes.
func FilterByHorizon(opps []Opportunity, horizonDays *int, today time.Time) FilterResult {
	cutoff := dateOnly(today)
	var horizon time.Time
	if horizonDays != nil {
		horizon = cutoff.AddDate(0, 0, *horizonDays)
	}

	included := make([]Opportunity, 0, len(opps))
	for _, o := range opps {
		if o.Amount <= 0 || o.Probability < 0 || o.Probability > 1 {
			continue
		}
		if horizonDays != nil {
			closeDay := dateOnly(o.CloseDate)
			if closeDay.Before(cutoff) || closeDay.After(horizon) {
				continue
			}
		}
		included = append(included, o)
	}

	return FilterResult{
		Included: included,
		Excluded: len(opps) - len(included),
	}
}

// dateOnly projects a timestamp to its calendar date in the timestamp's own
// location, normalized to UTC. Close dates arrive as UTC midnights while the
// request clock may run in any zone; comparing the UTC-normalized dates keeps
// the window a pure calendar-date comparison.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
