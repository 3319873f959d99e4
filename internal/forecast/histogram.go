package forecast

import "fmt"

// Bucket is one bar of the outcome distribution histogram. Buckets are
// contiguous, equal-width, half-open [low, high); the last bucket is closed
// on both ends so the maximum outcome is always counted. Binning uses the
// unrounded edges; RangeLow and RangeHigh are rounded to cents for display
// only, so a total landing within a cent of an edge may be counted one
// bucket away from where the rounded bounds suggest.
type Bucket struct {
	RangeLow  float64 `json:"range_low"`
	RangeHigh float64 `json:"range_high"`
	Label     string  `json:"label"`
	Count     int     `json:"count"`
	Frequency float64 `json:"frequency"`
}

// buildHistogram bins the trial totals into numBuckets equal-width buckets
// spanning [min, max]. When every total is identical the histogram collapses
// to a single zero-width bucket holding all trials.
func buildHistogram(totals []float64, numBuckets int) []Bucket {
	if len(totals) == 0 {
		return nil
	}

	lo, hi := totals[0], totals[0]
	for _, v := range totals[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	n := float64(len(totals))

	if lo == hi {
		return []Bucket{{
			RangeLow:  round2(lo),
			RangeHigh: round2(hi),
			Label:     fmt.Sprintf("%s – %s", formatMoney(lo), formatMoney(hi)),
			Count:     len(totals),
			Frequency: 1,
		}}
	}

	width := (hi - lo) / float64(numBuckets)
	counts := make([]int, numBuckets)
	for _, v := range totals {
		idx := int((v - lo) / width)
		if idx >= numBuckets {
			idx = numBuckets - 1
		}
		counts[idx]++
	}

	buckets := make([]Bucket, 0, numBuckets)
	for i, count := range counts {
		low := lo + float64(i)*width
		high := lo + float64(i+1)*width
		buckets = append(buckets, Bucket{
			RangeLow:  round2(low),
			RangeHigh: round2(high),
			Label:     fmt.Sprintf("%s – %s", formatMoney(low), formatMoney(high)),
			Count:     count,
			Frequency: round4(float64(count) / n),
		})
	}
	return buckets
}

// formatMoney renders a dollar value at an appropriate scale, e.g. "$1.5M",
// "$250K", "$900".
func formatMoney(v float64) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("$%.1fM", v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("$%.0fK", v/1_000)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}
