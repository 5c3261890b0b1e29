package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiro27cbs/carbontrack/internal/analytics"
	"github.com/tiro27cbs/carbontrack/internal/ledger"
)

func sampleRecords() []ledger.Record {
	return []ledger.Record{
		{Category: "Electricity", CarbonKg: 12.5, UserID: "alice"},
		{Category: "Flight", CarbonKg: 40.0, UserID: "alice"},
		{Category: "Electricity", CarbonKg: 3.0, UserID: "bob"},
	}
}

func TestTotalsChart(t *testing.T) {
	ordered := analytics.SortedTotals(analytics.TotalsByCategory(sampleRecords()))
	out := TotalsChart("Emissions by Category", ordered)

	assert.Contains(t, out, "Emissions by Category")
	assert.Contains(t, out, "Flight")
	assert.Contains(t, out, "Electricity")
	assert.Contains(t, out, "█")
}

func TestTotalsChartEmpty(t *testing.T) {
	out := TotalsChart("Emissions", nil)
	assert.Contains(t, out, "No data available")
}

func TestComparisonChartDense(t *testing.T) {
	cmp, err := analytics.Compare(sampleRecords(), []string{"alice", "bob"})
	require.NoError(t, err)

	out := ComparisonChart(cmp)
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "bob")
	// bob has no Flight records; the dense matrix still renders a zero bar.
	assert.Contains(t, out, "0.00")
}

func TestLedgerModelSortCycle(t *testing.T) {
	m := NewLedgerModel(sampleRecords())
	assert.Equal(t, sortNone, m.mode)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	model := next.(*LedgerModel)
	assert.Equal(t, sortAsc, model.mode)

	view := model.view()
	require.Len(t, view, 3)
	assert.InDelta(t, 3.0, view[0].CarbonKg, 1e-9)

	next, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	model = next.(*LedgerModel)
	assert.Equal(t, sortDesc, model.mode)
	assert.InDelta(t, 40.0, model.view()[0].CarbonKg, 1e-9)
}

func TestLedgerModelQuitKeys(t *testing.T) {
	m := NewLedgerModel(sampleRecords())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
