package cli

import (
	"github.com/spf13/cobra"

	"github.com/tiro27cbs/carbontrack/internal/carbon"
)

// NewEstimateElectricityCmd creates the estimate electricity command.
func NewEstimateElectricityCmd() *cobra.Command {
	var req carbon.ElectricityRequest

	cmd := &cobra.Command{
		Use:   "electricity",
		Short: "Estimate emissions for electricity consumption",
		Example: `  # 500 kWh in Germany
  carbontrack estimate electricity --value 500 --country DE

  # 1.2 MWh in California
  carbontrack estimate electricity --value 1.2 --unit mwh --country US --state ca`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEstimate(cmd, req)
		},
	}

	cmd.Flags().Float64Var(&req.Value, "value", 0, "amount of electricity consumed")
	cmd.Flags().StringVar(&req.Country, "country", "", "country code, e.g. DE or EU-27 (see 'carbontrack catalog countries')")
	cmd.Flags().StringVar(&req.State, "state", "", "state or grid region within the country (optional)")
	cmd.Flags().StringVar(&req.Unit, "unit", carbon.DefaultElectricityUnit, "unit: kwh or mwh")
	_ = cmd.MarkFlagRequired("value")
	_ = cmd.MarkFlagRequired("country")

	return cmd
}
