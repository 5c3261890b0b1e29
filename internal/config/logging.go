package config

import "github.com/tiro27cbs/carbontrack/internal/logging"

// ToLoggingConfig bridges the configuration system to the logging
// infrastructure. If a log file is configured, output goes to it; otherwise
// logs go to stderr.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}
