// Package analytics computes the derived views of the emissions ledger:
// per-category totals, ordered listings, the multi-user leaderboard, and the
// side-by-side comparison matrix.
//
// Every function here is pure: callers pass the (optionally user-filtered)
// record slice obtained from the ledger store, and nothing in this package
// mutates it.
package analytics

import (
	"sort"

	"github.com/tiro27cbs/carbontrack/internal/ledger"
)

// TotalsByCategory groups records by category label and sums the emission
// values. Categories with no records are absent from the result, not
// zero-valued; the comparison matrix is the dense counterpart.
func TotalsByCategory(records []ledger.Record) map[string]float64 {
	totals := make(map[string]float64)
	for _, rec := range records {
		totals[rec.Category] += rec.CarbonKg
	}
	return totals
}

// CategoryTotal pairs a category label with its summed emissions.
type CategoryTotal struct {
	Category string
	CarbonKg float64
}

// SortedTotals flattens a totals map into a slice ordered by descending
// emission value, the presentation order for category summaries. Equal
// totals order by category label so output is stable across runs.
func SortedTotals(totals map[string]float64) []CategoryTotal {
	out := make([]CategoryTotal, 0, len(totals))
	for category, kg := range totals {
		out = append(out, CategoryTotal{Category: category, CarbonKg: kg})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CarbonKg != out[j].CarbonKg {
			return out[i].CarbonKg > out[j].CarbonKg
		}
		return out[i].Category < out[j].Category
	})
	return out
}
