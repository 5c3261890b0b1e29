package analytics

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiro27cbs/carbontrack/internal/ledger"
)

// sampleLedger is the shared three-record fixture: two categories, two users.
func sampleLedger() []ledger.Record {
	return []ledger.Record{
		{Category: "Electricity", CarbonKg: 12.5, UserID: "alice"},
		{Category: "Flight", CarbonKg: 40.0, UserID: "alice"},
		{Category: "Electricity", CarbonKg: 3.0, UserID: "bob"},
	}
}

func TestTotalsByCategory(t *testing.T) {
	totals := TotalsByCategory(sampleLedger())
	require.Len(t, totals, 2)
	assert.InDelta(t, 15.5, totals["Electricity"], 1e-9)
	assert.InDelta(t, 40.0, totals["Flight"], 1e-9)
}

func TestTotalsByCategoryEmptyLedger(t *testing.T) {
	totals := TotalsByCategory(nil)
	assert.Empty(t, totals, "groups with no records are absent, not zero")
}

func TestTotalsMatchLedgerTotal(t *testing.T) {
	records := sampleLedger()
	var ledgerTotal float64
	for _, rec := range records {
		ledgerTotal += rec.CarbonKg
	}

	var categorySum float64
	for _, kg := range TotalsByCategory(records) {
		categorySum += kg
	}
	assert.InDelta(t, ledgerTotal, categorySum, 1e-9)
}

func TestSortedTotalsDescending(t *testing.T) {
	ordered := SortedTotals(TotalsByCategory(sampleLedger()))
	require.Len(t, ordered, 2)
	assert.Equal(t, "Flight", ordered[0].Category)
	assert.Equal(t, "Electricity", ordered[1].Category)
}

func TestSortAscending(t *testing.T) {
	records := []ledger.Record{
		{Category: "Flight", CarbonKg: 40.0, UserID: "alice"},
		{Category: "Electricity", CarbonKg: 3.0, UserID: "bob"},
		{Category: "Electricity", CarbonKg: 12.5, UserID: "alice"},
	}

	sorted := Sort(records, true)
	require.Len(t, sorted, 3)
	for i := 1; i < len(sorted); i++ {
		assert.LessOrEqual(t, sorted[i-1].CarbonKg, sorted[i].CarbonKg)
	}

	// Input order untouched.
	assert.InDelta(t, 40.0, records[0].CarbonKg, 1e-9)
}

func TestSortDescendingIsExactReverse(t *testing.T) {
	rng := rand.New(rand.NewSource(7)) //nolint:gosec // deterministic test data
	records := make([]ledger.Record, 50)
	for i := range records {
		records[i] = ledger.Record{Category: "Electricity", CarbonKg: rng.Float64() * 100, UserID: "u"}
	}

	asc := Sort(records, true)
	desc := Sort(records, false)
	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i])
	}
}

func TestSortPreservesElementMultiset(t *testing.T) {
	records := sampleLedger()
	sorted := Sort(records, true)

	wantKg := []float64{3.0, 12.5, 40.0}
	gotKg := make([]float64, len(sorted))
	for i, rec := range sorted {
		gotKg[i] = rec.CarbonKg
	}
	assert.Equal(t, wantKg, gotKg)
}

func TestSortHandlesDegenerateInputs(t *testing.T) {
	assert.Empty(t, Sort(nil, true))
	assert.Len(t, Sort([]ledger.Record{{CarbonKg: 1, UserID: "a"}}, false), 1)

	// Already-sorted input is the documented worst case; it must still
	// return correct output.
	var ordered []ledger.Record
	for i := 0; i < 100; i++ {
		ordered = append(ordered, ledger.Record{CarbonKg: float64(i), UserID: "u"})
	}
	sorted := Sort(ordered, true)
	assert.Equal(t, ordered, sorted)
}

func TestLeaderboard(t *testing.T) {
	board := Leaderboard(sampleLedger())
	require.Len(t, board, 2)
	assert.Equal(t, UserTotal{UserID: "bob", CarbonKg: 3.0}, board[0])
	assert.Equal(t, UserTotal{UserID: "alice", CarbonKg: 52.5}, board[1])
}

func TestLeaderboardOrderingProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(11)) //nolint:gosec // deterministic test data
	var records []ledger.Record
	users := []string{"a", "b", "c", "d", "e"}
	for i := 0; i < 40; i++ {
		records = append(records, ledger.Record{
			Category: "Vehicle",
			CarbonKg: rng.Float64() * 10,
			UserID:   users[rng.Intn(len(users))],
		})
	}

	board := Leaderboard(records)
	for i := 1; i < len(board); i++ {
		assert.LessOrEqual(t, board[i-1].CarbonKg, board[i].CarbonKg)
	}
}

func TestLeaderboardTieBreaksByUserID(t *testing.T) {
	records := []ledger.Record{
		{Category: "Flight", CarbonKg: 5, UserID: "zoe"},
		{Category: "Flight", CarbonKg: 5, UserID: "amy"},
	}
	board := Leaderboard(records)
	require.Len(t, board, 2)
	assert.Equal(t, "amy", board[0].UserID)
	assert.Equal(t, "zoe", board[1].UserID)
}

func TestCompareDenseFill(t *testing.T) {
	cmp, err := Compare(sampleLedger(), []string{"alice", "bob"})
	require.NoError(t, err)

	assert.Equal(t, []string{"alice", "bob"}, cmp.Users)
	assert.Equal(t, []string{"Electricity", "Flight"}, cmp.Categories)

	// Every category present for either user appears for both, zero-filled
	// where absent.
	assert.InDelta(t, 12.5, cmp.Cell("alice", "Electricity"), 1e-9)
	assert.InDelta(t, 40.0, cmp.Cell("alice", "Flight"), 1e-9)
	assert.InDelta(t, 3.0, cmp.Cell("bob", "Electricity"), 1e-9)
	assert.Zero(t, cmp.Cell("bob", "Flight"))

	for _, user := range cmp.Users {
		require.Len(t, cmp.Totals[user], len(cmp.Categories))
	}
}

func TestCompareEmptySelection(t *testing.T) {
	_, err := Compare(sampleLedger(), nil)
	assert.ErrorIs(t, err, ErrEmptySelection)

	_, err = Compare(sampleLedger(), []string{"nobody", "ghost"})
	assert.ErrorIs(t, err, ErrEmptySelection)
}

func TestCompareDeduplicatesUsers(t *testing.T) {
	cmp, err := Compare(sampleLedger(), []string{"bob", "bob", "alice"})
	require.NoError(t, err)
	assert.Equal(t, []string{"bob", "alice"}, cmp.Users)
}

func TestCompareIgnoresUnselectedUsers(t *testing.T) {
	records := append(sampleLedger(), ledger.Record{Category: "Shipping", CarbonKg: 99, UserID: "carol"})
	cmp, err := Compare(records, []string{"bob"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Electricity"}, cmp.Categories)
	assert.NotContains(t, cmp.Totals, "carol")

	categories := make([]string, len(cmp.Categories))
	copy(categories, cmp.Categories)
	sort.Strings(categories)
	assert.Equal(t, categories, cmp.Categories)
}
