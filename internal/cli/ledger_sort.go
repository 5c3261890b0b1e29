package cli

import (
	"github.com/spf13/cobra"

	"github.com/tiro27cbs/carbontrack/internal/analytics"
)

// NewLedgerSortCmd creates the ledger sort command, listing records ordered
// by emission value.
func NewLedgerSortCmd() *cobra.Command {
	var (
		user string
		desc bool
	)

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "List recorded emissions ordered by value",
		Example: `  # Smallest first
  carbontrack ledger sort

  # Largest first, one user only
  carbontrack ledger sort --desc --user alice`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			sorted := analytics.Sort(store.Records(user), !desc)
			return renderLedgerRecords(cmd, sorted)
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "only sort records for this user id")
	cmd.Flags().BoolVar(&desc, "desc", false, "largest emissions first")

	return cmd
}
