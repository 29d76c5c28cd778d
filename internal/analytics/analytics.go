// Package analytics computes the derived figures shown on the dashboard.
package analytics

import "github.com/ndewijer/Investment-Fund-Dashboard/internal/model"

// GrowthPercentage returns the percentage change from start to current.
// A zero start yields 0 rather than an error.
func GrowthPercentage(start, current float64) float64 {
	if start == 0 {
		return 0
	}
	return (current - start) / start * 100
}

// FindExtremalMonths returns the entries with the highest and lowest monthly
// return. Ties keep the earliest entry.
//
// It panics if entries is empty.
func FindExtremalMonths(entries []model.MonthEntry) (best, worst model.MonthEntry) {
	if len(entries) == 0 {
		panic("analytics.FindExtremalMonths: empty list")
	}

	best, worst = entries[0], entries[0]
	for _, m := range entries {
		if m.MonthlyReturn > best.MonthlyReturn {
			best = m
		}
		if m.MonthlyReturn < worst.MonthlyReturn {
			worst = m
		}
	}
	return best, worst
}

// ReturnBounds returns the smallest and largest monthly return, always
// including zero so the zero line stays inside the range.
func ReturnBounds(entries []model.MonthEntry) (lowest, highest float64) {
	for _, m := range entries {
		lowest = min(lowest, m.MonthlyReturn)
		highest = max(highest, m.MonthlyReturn)
	}
	return lowest, highest
}
