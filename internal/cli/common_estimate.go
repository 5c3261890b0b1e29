package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tiro27cbs/carbontrack/internal/analytics"
	"github.com/tiro27cbs/carbontrack/internal/carbon"
	"github.com/tiro27cbs/carbontrack/internal/greenops"
	"github.com/tiro27cbs/carbontrack/internal/ledger"
)

// estimateOutput is the JSON shape emitted by estimate commands.
type estimateOutput struct {
	Category     string            `json:"category"`
	CarbonKg     float64           `json:"carbon_kg"`
	UserID       string            `json:"user_id"`
	Equivalency  *greenops.Summary `json:"equivalency,omitempty"`
	LedgerPath   string            `json:"ledger_path,omitempty"`
	LedgerTotal  float64           `json:"ledger_total"`
	LedgerLength int               `json:"ledger_entries"`
}

// runEstimate drives the shared estimate pipeline: validate and send the
// request, record the result in the ledger, then render it. All five
// category commands funnel through here.
func runEstimate(cmd *cobra.Command, req carbon.Request) error {
	ctx := cmd.Context()

	client, err := newServiceClient()
	if err != nil {
		return err
	}

	user, err := resolveUser(cmd)
	if err != nil {
		return err
	}

	result, err := client.CreateEstimate(ctx, req, user)
	if err != nil {
		return err
	}

	store, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("opening ledger: %w", err)
	}

	rec := ledger.Record{
		Category: result.Category.String(),
		CarbonKg: result.CarbonKg,
		UserID:   result.UserID,
	}
	if err := store.Append(ctx, rec); err != nil {
		// The estimate succeeded; surface the persistence failure without
		// discarding the result the user paid a service call for.
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(),
			"Warning: estimate obtained but not persisted: %v\n", err)
	}

	logger.Info().Ctx(ctx).
		Str("operation", "estimate").
		Str("category", rec.Category).
		Str("user_id", rec.UserID).
		Float64("carbon_kg", rec.CarbonKg).
		Msg("estimate recorded")

	return renderEstimate(cmd, store, rec)
}

// renderEstimate writes a recorded estimate in the selected output format.
func renderEstimate(cmd *cobra.Command, store *ledger.Store, rec ledger.Record) error {
	summary := greenops.ForKg(rec.CarbonKg)

	if outputFormat(cmd) == analytics.FormatJSON {
		out := estimateOutput{
			Category:     rec.Category,
			CarbonKg:     rec.CarbonKg,
			UserID:       rec.UserID,
			LedgerPath:   store.Path(),
			LedgerTotal:  store.Total(rec.UserID),
			LedgerLength: store.Len(),
		}
		if !summary.IsEmpty {
			out.Equivalency = &summary
		}
		return analytics.WriteJSON(cmd.OutOrStdout(), out)
	}

	cmd.Printf("%s estimate for %s: %s kg CO2e\n",
		rec.Category, rec.UserID, analytics.FormatKg(rec.CarbonKg))
	if !summary.IsEmpty {
		cmd.Printf("%s\n", summary.Text)
	}
	cmd.Printf("Recorded in %s (user total: %s kg CO2e)\n",
		store.Path(), analytics.FormatKg(store.Total(rec.UserID)))
	return nil
}
