package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tiro27cbs/carbontrack/internal/analytics"
)

// Chart layout constants.
const (
	maxBarWidth   = 40
	labelPadWidth = 16
)

// Bar colors cycle per series.
//
//nolint:gochecknoglobals // Compile-time style table.
var barStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // green
	lipgloss.NewStyle().Foreground(lipgloss.Color("12")), // blue
	lipgloss.NewStyle().Foreground(lipgloss.Color("11")), // yellow
	lipgloss.NewStyle().Foreground(lipgloss.Color("13")), // magenta
	lipgloss.NewStyle().Foreground(lipgloss.Color("14")), // cyan
}

//nolint:gochecknoglobals // Compile-time style table.
var titleStyle = lipgloss.NewStyle().Bold(true)

// bar renders a proportional bar for value against max.
func bar(value, max float64) string {
	if max <= 0 {
		return ""
	}
	width := int(value / max * maxBarWidth)
	if width == 0 && value > 0 {
		width = 1
	}
	return strings.Repeat("█", width)
}

// TotalsChart renders a horizontal bar chart of per-category totals, already
// ordered by the caller (descending total for display).
func TotalsChart(title string, ordered []analytics.CategoryTotal) string {
	if len(ordered) == 0 {
		return "No data available to visualize.\n"
	}

	max := ordered[0].CarbonKg
	for _, ct := range ordered {
		if ct.CarbonKg > max {
			max = ct.CarbonKg
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	for i, ct := range ordered {
		style := barStyles[i%len(barStyles)]
		b.WriteString(fmt.Sprintf("%-*s %s %s\n",
			labelPadWidth,
			ct.Category,
			style.Render(bar(ct.CarbonKg, max)),
			analytics.FormatKg(ct.CarbonKg)))
	}
	return b.String()
}

// ComparisonChart renders grouped bars per category, one colored series per
// user. The dense matrix guarantees every user has a bar (possibly zero) in
// every category group.
func ComparisonChart(cmp *analytics.Comparison) string {
	var max float64
	for _, user := range cmp.Users {
		for _, category := range cmp.Categories {
			if v := cmp.Cell(user, category); v > max {
				max = v
			}
		}
	}
	if max == 0 {
		return "No data available to visualize.\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Emissions Comparison"))
	b.WriteString("\n")
	for _, category := range cmp.Categories {
		b.WriteString(category)
		b.WriteString("\n")
		for i, user := range cmp.Users {
			style := barStyles[i%len(barStyles)]
			value := cmp.Cell(user, category)
			b.WriteString(fmt.Sprintf("  %-*s %s %s\n",
				labelPadWidth,
				user,
				style.Render(bar(value, max)),
				analytics.FormatKg(value)))
		}
	}
	return b.String()
}
