package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tiro27cbs/carbontrack/internal/analytics"
	"github.com/tiro27cbs/carbontrack/internal/ledger"
)

// Table layout constants.
const (
	colWidthCategory = 20
	colWidthEmission = 16
	colWidthUser     = 20
	tableHeight      = 15
)

// sortMode cycles insertion order -> ascending -> descending.
type sortMode int

const (
	sortNone sortMode = iota
	sortAsc
	sortDesc
)

// LedgerModel is the interactive ledger browser: a scrollable record table
// with on-the-fly emission sorting.
type LedgerModel struct {
	records []ledger.Record
	mode    sortMode
	table   table.Model
}

// NewLedgerModel builds the browser over a snapshot of ledger records.
func NewLedgerModel(records []ledger.Record) *LedgerModel {
	columns := []table.Column{
		{Title: "Category", Width: colWidthCategory},
		{Title: "Emission (kg)", Width: colWidthEmission},
		{Title: "User ID", Width: colWidthUser},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(toRows(records)),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = styles.Selected.Bold(true)
	t.SetStyles(styles)

	return &LedgerModel{records: records, table: t}
}

func toRows(records []ledger.Record) []table.Row {
	rows := make([]table.Row, len(records))
	for i, rec := range records {
		rows[i] = table.Row{rec.Category, analytics.FormatKg(rec.CarbonKg), rec.UserID}
	}
	return rows
}

// Init implements tea.Model.
func (m *LedgerModel) Init() tea.Cmd { return nil }

// Update implements tea.Model. "s" cycles the sort mode, "q" quits.
func (m *LedgerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "s":
			m.mode = (m.mode + 1) % 3
			m.table.SetRows(toRows(m.view()))
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.table.SetHeight(min(tableHeight, msg.Height-3))
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// view returns the records in the current sort mode.
func (m *LedgerModel) view() []ledger.Record {
	switch m.mode {
	case sortAsc:
		return analytics.Sort(m.records, true)
	case sortDesc:
		return analytics.Sort(m.records, false)
	default:
		return m.records
	}
}

// View implements tea.Model.
func (m *LedgerModel) View() string {
	label := "insertion order"
	switch m.mode {
	case sortAsc:
		label = "ascending by emission"
	case sortDesc:
		label = "descending by emission"
	}
	return m.table.View() + "\n" +
		fmt.Sprintf("  %d records · sort: %s · [s] sort  [q] quit\n", len(m.records), label)
}

// Run starts the interactive browser and blocks until the user quits.
func Run(records []ledger.Record) error {
	_, err := tea.NewProgram(NewLedgerModel(records), tea.WithAltScreen()).Run()
	return err
}
