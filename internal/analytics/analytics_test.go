package analytics_test

import (
	"testing"

	"github.com/ndewijer/Investment-Fund-Dashboard/internal/analytics"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/model"
)

func months(returns ...float64) []model.MonthEntry {
	labels := []string{"Aug 2025", "Sep 2025", "Oct 2025", "Nov 2025", "Dec 2025", "Jan 2026"}
	entries := make([]model.MonthEntry, len(returns))
	for i, r := range returns {
		entries[i] = model.MonthEntry{Month: labels[i%len(labels)], MonthlyReturn: r}
	}
	return entries
}

func TestGrowthPercentage(t *testing.T) {
	tests := []struct {
		name    string
		start   float64
		current float64
		want    float64
	}{
		{"growth", 10000, 11250, 12.5},
		{"decline", 10000, 9000, -10},
		{"unchanged", 10000, 10000, 0},
		{"zero start falls back to zero", 0, 500, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analytics.GrowthPercentage(tt.start, tt.current)
			if got != tt.want {
				t.Errorf("GrowthPercentage(%v, %v) = %v, want %v", tt.start, tt.current, got, tt.want)
			}
		})
	}
}

func TestFindExtremalMonths(t *testing.T) {
	t.Run("finds best and worst month", func(t *testing.T) {
		best, worst := analytics.FindExtremalMonths(months(3.2, -0.5, 2.8, 1.9, 4.1, -1.2))

		if best.MonthlyReturn != 4.1 || best.Month != "Dec 2025" {
			t.Errorf("Expected best Dec 2025 4.1, got %s %v", best.Month, best.MonthlyReturn)
		}
		if worst.MonthlyReturn != -1.2 || worst.Month != "Jan 2026" {
			t.Errorf("Expected worst Jan 2026 -1.2, got %s %v", worst.Month, worst.MonthlyReturn)
		}
	})

	t.Run("ties keep the earliest entry", func(t *testing.T) {
		best, worst := analytics.FindExtremalMonths(months(0.5, 0.4, 0.7, 0.5, 0.7, 0.4))

		if best.Month != "Oct 2025" {
			t.Errorf("Expected best to be the first 0.7 (Oct 2025), got %s", best.Month)
		}
		if worst.Month != "Sep 2025" {
			t.Errorf("Expected worst to be the first 0.4 (Sep 2025), got %s", worst.Month)
		}
	})

	t.Run("single entry is both best and worst", func(t *testing.T) {
		best, worst := analytics.FindExtremalMonths(months(1.5))

		if best != worst {
			t.Errorf("Expected best and worst to match, got %v and %v", best, worst)
		}
	})

	t.Run("panics on empty input", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Expected panic on empty input")
			}
		}()
		analytics.FindExtremalMonths(nil)
	})
}

func TestReturnBounds(t *testing.T) {
	tests := []struct {
		name        string
		returns     []float64
		wantLowest  float64
		wantHighest float64
	}{
		{"mixed", []float64{3.2, -0.5, 4.1, -1.2}, -1.2, 4.1},
		{"all positive includes zero", []float64{0.5, 0.4, 0.7}, 0, 0.7},
		{"all negative includes zero", []float64{-0.5, -2.4}, -2.4, 0},
		{"empty", nil, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lowest, highest := analytics.ReturnBounds(months(tt.returns...))
			if lowest != tt.wantLowest || highest != tt.wantHighest {
				t.Errorf("ReturnBounds() = (%v, %v), want (%v, %v)", lowest, highest, tt.wantLowest, tt.wantHighest)
			}
		})
	}
}
