package cli

import (
	"github.com/spf13/cobra"

	"github.com/tiro27cbs/carbontrack/internal/analytics"
)

// NewLeaderboardCmd creates the leaderboard command, ranking users by their
// total recorded emissions with the lowest emitter first.
func NewLeaderboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Rank users by total emissions, lowest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}

			board := analytics.Leaderboard(store.Records(""))

			if outputFormat(cmd) == analytics.FormatJSON {
				return analytics.WriteJSON(cmd.OutOrStdout(), board)
			}
			if len(board) == 0 {
				cmd.Println("No emissions recorded yet.")
				return nil
			}
			return analytics.RenderLeaderboard(cmd.OutOrStdout(), board)
		},
	}
	return cmd
}
