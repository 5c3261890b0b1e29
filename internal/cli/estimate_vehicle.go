package cli

import (
	"github.com/spf13/cobra"

	"github.com/tiro27cbs/carbontrack/internal/carbon"
)

// NewEstimateVehicleCmd creates the estimate vehicle command.
func NewEstimateVehicleCmd() *cobra.Command {
	var req carbon.VehicleRequest

	cmd := &cobra.Command{
		Use:   "vehicle",
		Short: "Estimate emissions for a trip in a specific vehicle",
		Long:  "Estimate emissions for driving a specific vehicle model. Find model IDs with 'carbontrack vehicles makes' and 'carbontrack vehicles models <make-id>'.",
		Example: `  # 350 km in a specific model
  carbontrack estimate vehicle --distance 350 --model 7268a9b7-17e8-4c8d-acca-57059252afe9`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEstimate(cmd, req)
		},
	}

	cmd.Flags().Float64Var(&req.DistanceValue, "distance", 0, "trip distance")
	cmd.Flags().StringVar(&req.DistanceUnit, "distance-unit", carbon.DefaultDistanceUnit, "distance unit: km or mi")
	cmd.Flags().StringVar(&req.VehicleModelID, "model", "", "vehicle model id from the vehicles lookup")
	_ = cmd.MarkFlagRequired("distance")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}
