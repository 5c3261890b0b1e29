package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tiro27cbs/carbontrack/internal/analytics"
	"github.com/tiro27cbs/carbontrack/internal/catalog"
)

// newCatalogCmd creates the catalog command group for the built-in reference
// data: fuel sources and electricity country codes.
func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List fuel sources and country codes accepted by estimates",
	}
	cmd.AddCommand(newCatalogFuelsCmd(), newCatalogCountriesCmd())
	return cmd
}

func newCatalogFuelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fuels",
		Short: "List fuel sources for fuel estimates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fuels := catalog.Fuels()
			if outputFormat(cmd) == analytics.FormatJSON {
				return analytics.WriteJSON(cmd.OutOrStdout(), fuels)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tFUEL\tUNITS")
			for _, f := range fuels {
				fmt.Fprintf(w, "%s\t%s\t%s\n", f.Key, f.Name, strings.Join(f.Units, ", "))
			}
			return w.Flush()
		},
	}
}

func newCatalogCountriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List country codes for electricity estimates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			countries := catalog.Countries()
			if outputFormat(cmd) == analytics.FormatJSON {
				return analytics.WriteJSON(cmd.OutOrStdout(), countries)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tCOUNTRY")
			for _, c := range countries {
				fmt.Fprintf(w, "%s\t%s\n", c.Code, c.Name)
			}
			return w.Flush()
		},
	}
}
