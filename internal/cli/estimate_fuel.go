package cli

import (
	"github.com/spf13/cobra"

	"github.com/tiro27cbs/carbontrack/internal/carbon"
)

// NewEstimateFuelCmd creates the estimate fuel command.
func NewEstimateFuelCmd() *cobra.Command {
	var req carbon.FuelCombustionRequest

	cmd := &cobra.Command{
		Use:   "fuel",
		Short: "Estimate emissions for burning a fuel",
		Long:  "Estimate emissions for combusting a catalogued fuel source. Run 'carbontrack catalog fuels' to list fuel keys and their units.",
		Example: `  # 2 thousand cubic feet of natural gas
  carbontrack estimate fuel --source ng --unit thousand_cubic_feet --value 2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEstimate(cmd, req)
		},
	}

	cmd.Flags().StringVar(&req.FuelKey, "source", "", "fuel source key, e.g. ng, dfo, msw")
	cmd.Flags().StringVar(&req.FuelUnit, "unit", "", "fuel unit for the chosen source")
	cmd.Flags().Float64Var(&req.FuelValue, "value", 0, "amount of fuel combusted")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("unit")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}
