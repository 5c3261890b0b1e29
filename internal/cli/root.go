// Package cli wires the carbontrack command tree: estimate commands that
// call the estimation service and record results, and ledger commands that
// aggregate, rank, and compare what has been recorded.
package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tiro27cbs/carbontrack/internal/carbon"
	"github.com/tiro27cbs/carbontrack/internal/config"
	"github.com/tiro27cbs/carbontrack/internal/ledger"
	"github.com/tiro27cbs/carbontrack/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the carbontrack CLI.
// It wires up configuration loading, logging, and the estimate/ledger/config
// subcommand groups.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.Result

	cmd := &cobra.Command{
		Use:     "carbontrack",
		Short:   "Track carbon emissions across activities and users",
		Long:    "carbontrack: estimate carbon emissions for real-world activities via the Carbon Interface API and keep a durable multi-user emissions ledger",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.New()
			config.SetGlobalConfig(cfg)

			result := setupLogging(cmd, cfg)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("user", "", "user id to act as (overrides users.default)")
	cmd.PersistentFlags().String("ledger", "", "ledger file path (overrides ledger.path)")
	cmd.PersistentFlags().StringP("output", "o", "", "output format: table, json, ndjson")

	cmd.AddCommand(
		newEstimateCmd(),
		newLedgerCmd(),
		NewLeaderboardCmd(),
		NewCompareCmd(),
		newChartCmd(),
		newVehiclesCmd(),
		newCatalogCmd(),
		newConfigCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Record an electricity estimate for 500 kWh in Germany
  carbontrack estimate electricity --value 500 --country DE --user alice

  # Record a two-leg flight for one passenger
  carbontrack estimate flight --passengers 1 --leg LHR-JFK --leg JFK-SFO

  # Show everyone's recorded emissions, largest first
  carbontrack ledger sort --desc

  # Rank users by total emissions, lowest first
  carbontrack leaderboard

  # Compare two users side by side
  carbontrack compare alice bob

  # Store the API key
  carbontrack config set api.key <your-key>`

// newEstimateCmd creates the estimate command group with one subcommand per
// category, plus retrieval of past estimates by id.
func newEstimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Request emission estimates and record them in the ledger",
	}
	cmd.AddCommand(
		NewEstimateElectricityCmd(),
		NewEstimateFlightCmd(),
		NewEstimateShippingCmd(),
		NewEstimateFuelCmd(),
		NewEstimateVehicleCmd(),
		NewEstimateLookupCmd(),
	)
	return cmd
}

// newLedgerCmd creates the ledger command group.
func newLedgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Inspect and maintain the emissions ledger",
	}
	cmd.AddCommand(
		NewLedgerShowCmd(),
		NewLedgerSortCmd(),
		NewLedgerTotalCmd(),
		NewLedgerRemoveCmd(),
		NewLedgerBrowseCmd(),
	)
	return cmd
}

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(),
		NewConfigSetCmd(),
		NewConfigGetCmd(),
		NewConfigListCmd(),
	)
	return cmd
}

// openStore opens the ledger selected by the --ledger flag or configuration.
func openStore(cmd *cobra.Command) (*ledger.Store, error) {
	path, _ := cmd.Flags().GetString("ledger")
	if path == "" {
		path = config.GetGlobalConfig().Ledger.Path
	}
	return ledger.Open(cmd.Context(), path)
}

// resolveUser returns the acting user id from the --user flag or the
// configured default.
func resolveUser(cmd *cobra.Command) (string, error) {
	user, _ := cmd.Flags().GetString("user")
	if user == "" {
		user = config.GetGlobalConfig().Users.Default
	}
	if user == "" {
		return "", errors.New("no user id: pass --user or set users.default in the config")
	}
	return user, nil
}

// outputFormat returns the effective output format for a command.
func outputFormat(cmd *cobra.Command) string {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		format = config.GetGlobalConfig().Output.DefaultFormat
	}
	return format
}

// newServiceClient builds the estimation service client from configuration.
// It fails fast when no API key is available: every estimate requires one.
func newServiceClient() (*carbon.Client, error) {
	cfg := config.GetGlobalConfig()
	if cfg.API.Key == "" {
		return nil, fmt.Errorf(
			"no API key configured: run 'carbontrack config set api.key <key>' or set %s", config.EnvAPIKey)
	}
	return carbon.NewClient(carbon.ClientOptions{
		APIKey:  cfg.API.Key,
		BaseURL: cfg.API.BaseURL,
		Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second,
	}), nil
}
