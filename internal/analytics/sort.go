package analytics

import "github.com/tiro27cbs/carbontrack/internal/ledger"

// Sort orders records by emission value using a first-pivot partition sort,
// ascending when ascending is true and reversed otherwise. The input slice
// is not modified.
//
// The algorithm is a faithful port of the historical implementation: the
// pivot is always the first element, ties may be reordered (the sort is not
// stable), and already-sorted input degrades to quadratic time. Ledgers are
// small enough that the simplicity wins; see DESIGN.md before "fixing" this,
// since downstream output ordering is part of the observable behavior.
func Sort(records []ledger.Record, ascending bool) []ledger.Record {
	sorted := quicksort(records)
	if !ascending {
		reverse(sorted)
	}
	return sorted
}

// quicksort returns a new slice sorted non-decreasing by CarbonKg.
func quicksort(records []ledger.Record) []ledger.Record {
	if len(records) <= 1 {
		out := make([]ledger.Record, len(records))
		copy(out, records)
		return out
	}

	pivot := records[0]
	var less, greater []ledger.Record
	for _, rec := range records[1:] {
		if rec.CarbonKg <= pivot.CarbonKg {
			less = append(less, rec)
		} else {
			greater = append(greater, rec)
		}
	}

	out := quicksort(less)
	out = append(out, pivot)
	out = append(out, quicksort(greater)...)
	return out
}

// reverse flips a slice in place.
func reverse(records []ledger.Record) {
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
}
