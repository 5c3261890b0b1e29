package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tiro27cbs/carbontrack/internal/carbon"
)

// NewEstimateFlightCmd creates the estimate flight command.
func NewEstimateFlightCmd() *cobra.Command {
	var (
		passengers   int
		legs         []string
		distanceUnit string
	)

	cmd := &cobra.Command{
		Use:   "flight",
		Short: "Estimate emissions for passenger air travel",
		Example: `  # One passenger, one-way
  carbontrack estimate flight --passengers 1 --leg LHR-JFK

  # Two passengers, round trip
  carbontrack estimate flight --passengers 2 --leg MUC-SFO --leg SFO-MUC`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := parseFlightLegs(legs)
			if err != nil {
				return err
			}
			return runEstimate(cmd, carbon.FlightRequest{
				Passengers:   passengers,
				Legs:         parsed,
				DistanceUnit: distanceUnit,
			})
		},
	}

	cmd.Flags().IntVar(&passengers, "passengers", 0, "number of passengers")
	cmd.Flags().StringArrayVar(&legs, "leg", nil, "flight leg as DEPARTURE-DESTINATION IATA codes, repeatable")
	cmd.Flags().StringVar(&distanceUnit, "distance-unit", carbon.DefaultDistanceUnit, "distance unit: km or mi")
	_ = cmd.MarkFlagRequired("passengers")
	_ = cmd.MarkFlagRequired("leg")

	return cmd
}

// parseFlightLegs converts "LHR-JFK" strings into typed legs.
func parseFlightLegs(raw []string) ([]carbon.FlightLeg, error) {
	legs := make([]carbon.FlightLeg, 0, len(raw))
	for _, s := range raw {
		parts := strings.Split(s, "-")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid leg %q: expected DEPARTURE-DESTINATION, e.g. LHR-JFK", s)
		}
		legs = append(legs, carbon.FlightLeg{
			Departure:   strings.ToUpper(parts[0]),
			Destination: strings.ToUpper(parts[1]),
		})
	}
	return legs, nil
}
