package cli

import (
	"github.com/spf13/cobra"

	"github.com/tiro27cbs/carbontrack/internal/analytics"
)

// NewCompareCmd creates the compare command: a per-category side-by-side of
// two or more users' totals. Users with no records are reported as an error
// rather than silently shown as zeros.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <user-id> <user-id> [user-id...]",
		Short: "Compare users' emissions per category",
		Example: `  # Two users side by side
  carbontrack compare alice bob

  # Three users, as JSON
  carbontrack compare alice bob carol -o json`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}

			cmp, err := analytics.Compare(store.Records(""), args)
			if err != nil {
				return err
			}

			if outputFormat(cmd) == analytics.FormatJSON {
				return analytics.WriteJSON(cmd.OutOrStdout(), cmp)
			}
			return analytics.RenderComparison(cmd.OutOrStdout(), cmp)
		},
	}
	return cmd
}
