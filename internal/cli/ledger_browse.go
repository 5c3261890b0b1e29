package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/tiro27cbs/carbontrack/internal/tui"
)

// NewLedgerBrowseCmd creates the ledger browse command: an interactive
// table over the recorded emissions with keyboard-driven sorting.
func NewLedgerBrowseCmd() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse recorded emissions interactively",
		Long:  "Open an interactive table over the ledger. Press 's' to cycle sort order, 'q' to quit.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !tui.IsTTY() {
				return errors.New("ledger browse requires an interactive terminal; use 'ledger show' instead")
			}

			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			if store.Len() == 0 {
				cmd.Println("No emissions recorded yet.")
				return nil
			}
			return tui.Run(store.Records(user))
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "only browse records for this user id")

	return cmd
}
