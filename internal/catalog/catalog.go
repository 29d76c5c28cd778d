// Package catalog holds the fixed set of funds shown on the dashboard.
// The records are compiled in and read-only; Funds hands out copies.
package catalog

import "github.com/ndewijer/Investment-Fund-Dashboard/internal/model"

// Funds returns a copy of the catalog in display order.
func Funds() []model.FundRecord {
	out := make([]model.FundRecord, len(funds))
	for i, f := range funds {
		out[i] = f.Clone()
	}
	return out
}
