package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/tiro27cbs/carbontrack/internal/analytics"
)

// NewEstimateLookupCmd creates the estimate lookup command for retrieving a
// previously created estimate by its service-assigned ID. Lookups are
// read-only and never touch the ledger.
func NewEstimateLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <estimate-id>",
		Short: "Retrieve a previously created estimate by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newServiceClient()
			if err != nil {
				return err
			}

			result, err := client.GetEstimate(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if outputFormat(cmd) == analytics.FormatJSON {
				return analytics.WriteJSON(cmd.OutOrStdout(), json.RawMessage(result.Raw))
			}
			cmd.Printf("Estimate %s: %s kg CO2e\n", args[0], analytics.FormatKg(result.CarbonKg))
			return nil
		},
	}
	return cmd
}
