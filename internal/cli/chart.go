package cli

import (
	"github.com/spf13/cobra"

	"github.com/tiro27cbs/carbontrack/internal/analytics"
	"github.com/tiro27cbs/carbontrack/internal/tui"
)

// newChartCmd creates the chart command group: terminal bar charts over the
// recorded emissions.
func newChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render emissions as terminal bar charts",
	}
	cmd.AddCommand(NewChartTotalsCmd(), NewChartCompareCmd())
	return cmd
}

// NewChartTotalsCmd creates the chart totals command showing per-category
// totals, largest first.
func NewChartTotalsCmd() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Chart per-category emission totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}

			totals := analytics.TotalsByCategory(store.Records(user))
			ordered := analytics.SortedTotals(totals)
			if len(ordered) == 0 {
				cmd.Println("No emissions recorded yet.")
				return nil
			}

			title := "Emissions by category (kg CO2e)"
			if user != "" {
				title = "Emissions by category for " + user + " (kg CO2e)"
			}
			cmd.Println(tui.TotalsChart(title, ordered))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "only chart records for this user id")

	return cmd
}

// NewChartCompareCmd creates the chart compare command: grouped bars of two
// or more users' per-category totals.
func NewChartCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <user-id> <user-id> [user-id...]",
		Short: "Chart users' emissions side by side",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}

			cmp, err := analytics.Compare(store.Records(""), args)
			if err != nil {
				return err
			}
			cmd.Println(tui.ComparisonChart(cmp))
			return nil
		},
	}
	return cmd
}
