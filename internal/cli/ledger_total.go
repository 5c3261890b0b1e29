package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tiro27cbs/carbontrack/internal/analytics"
	"github.com/tiro27cbs/carbontrack/internal/greenops"
)

// NewLedgerTotalCmd creates the ledger total command. Without --user it
// reports the ledger-wide total across all users.
func NewLedgerTotalCmd() *cobra.Command {
	var (
		user string
		unit string
	)

	cmd := &cobra.Command{
		Use:   "total",
		Short: "Show total recorded emissions",
		Example: `  # Everyone's total, in kg
  carbontrack ledger total

  # One user's total, in metric tonnes
  carbontrack ledger total --user alice --unit t`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}

			total, err := greenops.ConvertKg(store.Total(user), unit)
			if err != nil {
				return fmt.Errorf("converting total: %w", err)
			}

			if outputFormat(cmd) == analytics.FormatJSON {
				return analytics.WriteJSON(cmd.OutOrStdout(), map[string]any{
					"user_id": user,
					"total":   total,
					"unit":    unit,
				})
			}

			scope := "all users"
			if user != "" {
				scope = user
			}
			cmd.Printf("Total for %s: %s %s CO2e\n", scope, analytics.FormatKg(total), unit)

			summary := greenops.ForKg(store.Total(user))
			if !summary.IsEmpty {
				cmd.Printf("%s\n", summary.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "total one user's emissions only")
	cmd.Flags().StringVar(&unit, "unit", "kg", "output unit: g, kg, lb, t")

	return cmd
}
