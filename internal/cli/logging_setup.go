package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tiro27cbs/carbontrack/internal/config"
	"github.com/tiro27cbs/carbontrack/internal/logging"
)

// setupLogging configures logging based on config file, environment, and CLI
// flags, and stashes a trace-ID-annotated logger in the command context.
func setupLogging(cmd *cobra.Command, cfg *config.Config) logging.Result {
	loggingCfg := cfg.Logging

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		loggingCfg.File = ""
	}

	result := logging.New(loggingCfg.ToLoggingConfig())
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Logs: %s\n", result.FilePath)
	} else if result.FallbackUsed {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(),
			"Warning: could not open log file, logging to stderr")
	}

	traceID := logging.GetOrGenerateTraceID(cmd.Context())
	ctx := logging.ContextWithTraceID(cmd.Context(), traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle if one was opened.
func cleanupLogging(logResult *logging.Result) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
