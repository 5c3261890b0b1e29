package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tiro27cbs/carbontrack/internal/analytics"
)

// newVehiclesCmd creates the vehicles command group for browsing the
// service's make and model catalogue.
func newVehiclesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vehicles",
		Short: "Browse vehicle makes and models for vehicle estimates",
	}
	cmd.AddCommand(newVehicleMakesCmd(), newVehicleModelsCmd())
	return cmd
}

func newVehicleMakesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "makes",
		Short: "List vehicle makes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newServiceClient()
			if err != nil {
				return err
			}

			makes, err := client.VehicleMakes(cmd.Context())
			if err != nil {
				return err
			}

			if outputFormat(cmd) == analytics.FormatJSON {
				return analytics.WriteJSON(cmd.OutOrStdout(), makes)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "MAKE\tID")
			for _, m := range makes {
				fmt.Fprintf(w, "%s\t%s\n", m.Name, m.ID)
			}
			return w.Flush()
		},
	}
}

func newVehicleModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models <make-id>",
		Short: "List vehicle models for a make",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newServiceClient()
			if err != nil {
				return err
			}

			models, err := client.VehicleModels(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if outputFormat(cmd) == analytics.FormatJSON {
				return analytics.WriteJSON(cmd.OutOrStdout(), models)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "MODEL\tYEAR\tID")
			for _, m := range models {
				fmt.Fprintf(w, "%s\t%d\t%s\n", m.Name, m.Year, m.ID)
			}
			return w.Flush()
		},
	}
}
