package cli

import (
	"github.com/spf13/cobra"

	"github.com/tiro27cbs/carbontrack/internal/analytics"
	"github.com/tiro27cbs/carbontrack/internal/ledger"
)

// NewLedgerShowCmd creates the ledger show command. Records are listed in
// the order they were appended; use 'ledger sort' for value ordering.
func NewLedgerShowCmd() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "List recorded emissions",
		Example: `  # Everyone's records, in append order
  carbontrack ledger show

  # One user's records, as NDJSON
  carbontrack ledger show --user alice -o ndjson`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			return renderLedgerRecords(cmd, store.Records(user))
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "only show records for this user id")

	return cmd
}

// renderLedgerRecords writes records in the selected output format.
func renderLedgerRecords(cmd *cobra.Command, records []ledger.Record) error {
	switch outputFormat(cmd) {
	case analytics.FormatJSON:
		return analytics.WriteJSON(cmd.OutOrStdout(), records)
	case analytics.FormatNDJSON:
		return analytics.WriteNDJSON(cmd.OutOrStdout(), records)
	default:
		if len(records) == 0 {
			cmd.Println("No emissions recorded yet.")
			return nil
		}
		return analytics.RenderRecords(cmd.OutOrStdout(), records)
	}
}
