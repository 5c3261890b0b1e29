package analytics

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/tiro27cbs/carbontrack/internal/ledger"
)

// Output formats accepted by the render helpers.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
)

// tabwriter settings shared by all tables.
const (
	tabMinWidth = 2
	tabPadding  = 2
)

// FormatKg renders an emission value for table display.
func FormatKg(kg float64) string {
	return fmt.Sprintf("%.2f", kg)
}

// RenderRecords writes records as a three-column table in ledger order.
func RenderRecords(w io.Writer, records []ledger.Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No emission data available.")
		return err
	}

	tw := tabwriter.NewWriter(w, tabMinWidth, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tEMISSION (KG)\tUSER ID")
	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", rec.Category, FormatKg(rec.CarbonKg), rec.UserID)
	}
	return tw.Flush()
}

// RenderTotals writes per-category totals in descending order, followed by
// the overall sum.
func RenderTotals(w io.Writer, ordered []CategoryTotal) error {
	if len(ordered) == 0 {
		_, err := fmt.Fprintln(w, "No emission data available.")
		return err
	}

	tw := tabwriter.NewWriter(w, tabMinWidth, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tEMISSION (KG)")
	var sum float64
	for _, ct := range ordered {
		fmt.Fprintf(tw, "%s\t%s\n", ct.Category, FormatKg(ct.CarbonKg))
		sum += ct.CarbonKg
	}
	fmt.Fprintf(tw, "TOTAL\t%s\n", FormatKg(sum))
	return tw.Flush()
}

// RenderLeaderboard writes the ranked users, lowest emitter first.
func RenderLeaderboard(w io.Writer, board []UserTotal) error {
	if len(board) == 0 {
		_, err := fmt.Fprintln(w, "No emission data available.")
		return err
	}

	tw := tabwriter.NewWriter(w, tabMinWidth, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "RANK\tUSER ID\tTOTAL (KG)")
	for i, ut := range board {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, ut.UserID, FormatKg(ut.CarbonKg))
	}
	return tw.Flush()
}

// RenderComparison writes the dense comparison matrix with one row per
// category and one column per user.
func RenderComparison(w io.Writer, cmp *Comparison) error {
	tw := tabwriter.NewWriter(w, tabMinWidth, 0, tabPadding, ' ', 0)

	fmt.Fprint(tw, "CATEGORY")
	for _, user := range cmp.Users {
		fmt.Fprintf(tw, "\t%s", user)
	}
	fmt.Fprintln(tw)

	for _, category := range cmp.Categories {
		fmt.Fprint(tw, category)
		for _, user := range cmp.Users {
			fmt.Fprintf(tw, "\t%s", FormatKg(cmp.Cell(user, category)))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// WriteJSON marshals v with indentation for --output json.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteNDJSON writes one compact JSON object per record, for streaming
// consumers.
func WriteNDJSON(w io.Writer, records []ledger.Record) error {
	enc := json.NewEncoder(w)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}
