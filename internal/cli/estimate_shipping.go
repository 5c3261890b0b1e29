package cli

import (
	"github.com/spf13/cobra"

	"github.com/tiro27cbs/carbontrack/internal/carbon"
)

// NewEstimateShippingCmd creates the estimate shipping command.
func NewEstimateShippingCmd() *cobra.Command {
	var req carbon.ShippingRequest

	cmd := &cobra.Command{
		Use:   "shipping",
		Short: "Estimate emissions for moving freight",
		Example: `  # 200 kg by truck over 1500 km
  carbontrack estimate shipping --weight 200 --weight-unit kg --distance 1500 --distance-unit km --transport truck`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEstimate(cmd, req)
		},
	}

	cmd.Flags().Float64Var(&req.WeightValue, "weight", 0, "shipment weight")
	cmd.Flags().StringVar(&req.WeightUnit, "weight-unit", "kg", "weight unit: g, lb, kg, mt")
	cmd.Flags().Float64Var(&req.DistanceValue, "distance", 0, "shipment distance")
	cmd.Flags().StringVar(&req.DistanceUnit, "distance-unit", carbon.DefaultDistanceUnit, "distance unit: km or mi")
	cmd.Flags().StringVar(&req.TransportMethod, "transport", "", "transport method: ship, train, truck, plane")
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("distance")
	_ = cmd.MarkFlagRequired("transport")

	return cmd
}
