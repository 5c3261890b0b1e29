package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

// NewLedgerRemoveCmd creates the ledger remove command for deleting one
// user's records, or the whole ledger with --all.
func NewLedgerRemoveCmd() *cobra.Command {
	var (
		all bool
		yes bool
	)

	cmd := &cobra.Command{
		Use:   "remove [user-id]",
		Short: "Remove a user's records, or all records",
		Example: `  # Remove one user's records
  carbontrack ledger remove alice

  # Clear the whole ledger without prompting
  carbontrack ledger remove --all --yes`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (len(args) == 1) {
				return errors.New("pass exactly one of a user id or --all")
			}

			user := ""
			question := "Remove ALL recorded emissions?"
			if !all {
				user = args[0]
				question = "Remove all records for " + user + "?"
			}

			if !yes && !Confirm(cmd.OutOrStdout(), cmd.InOrStdin(), question) {
				cmd.Println("Aborted.")
				return nil
			}

			store, err := openStore(cmd)
			if err != nil {
				return err
			}

			before := store.Len()
			if err := store.Remove(cmd.Context(), user); err != nil {
				return err
			}

			logger.Info().Ctx(cmd.Context()).
				Str("operation", "ledger_remove").
				Str("user_id", user).
				Int("removed", before-store.Len()).
				Msg("records removed")

			cmd.Printf("Removed %d record(s).\n", before-store.Len())
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "remove every record for every user")
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")

	return cmd
}
