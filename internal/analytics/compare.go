package analytics

import (
	"sort"

	"github.com/tiro27cbs/carbontrack/internal/ledger"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrEmptySelection indicates a comparison request with no user ids, or
// where none of the requested users have any ledger records.
const ErrEmptySelection = constError("no users selected for comparison")

// Comparison is the dense per-user-per-category emission matrix used for
// side-by-side rendering. Unlike TotalsByCategory, every (user, category)
// cell is present: combinations absent from the ledger hold zero, so rows
// line up when charted next to each other.
type Comparison struct {
	// Users preserves the requested order, de-duplicated.
	Users []string

	// Categories are all category labels present for any compared user,
	// sorted alphabetically.
	Categories []string

	// Totals maps user id -> category label -> summed kg. Dense over
	// Users x Categories.
	Totals map[string]map[string]float64
}

// Cell returns the emission total for one (user, category) pair.
func (c *Comparison) Cell(userID, category string) float64 {
	row, ok := c.Totals[userID]
	if !ok {
		return 0
	}
	return row[category]
}

// Compare filters the ledger to the given user ids, groups by user and
// category, and reshapes the sums into a dense matrix.
//
// Returns ErrEmptySelection when userIDs is empty or none of the ids have
// records in the ledger.
func Compare(records []ledger.Record, userIDs []string) (*Comparison, error) {
	if len(userIDs) == 0 {
		return nil, ErrEmptySelection
	}

	users := dedupe(userIDs)
	selected := make(map[string]bool, len(users))
	for _, u := range users {
		selected[u] = true
	}

	categorySet := make(map[string]bool)
	sums := make(map[string]map[string]float64, len(users))
	matched := false
	for _, rec := range records {
		if !selected[rec.UserID] {
			continue
		}
		matched = true
		categorySet[rec.Category] = true
		if sums[rec.UserID] == nil {
			sums[rec.UserID] = make(map[string]float64)
		}
		sums[rec.UserID][rec.Category] += rec.CarbonKg
	}
	if !matched {
		return nil, ErrEmptySelection
	}

	categories := make([]string, 0, len(categorySet))
	for c := range categorySet {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	// Dense fill: every selected user gets every category, zero where the
	// ledger had nothing.
	totals := make(map[string]map[string]float64, len(users))
	for _, u := range users {
		row := make(map[string]float64, len(categories))
		for _, c := range categories {
			row[c] = sums[u][c]
		}
		totals[u] = row
	}

	return &Comparison{Users: users, Categories: categories, Totals: totals}, nil
}

// dedupe removes repeated ids while preserving first-seen order.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
