// Package config loads and persists carbontrack configuration.
//
// Precedence, lowest to highest: built-in defaults, the YAML config file at
// ~/.carbontrack/config.yaml, then CARBONTRACK_* environment variables. CLI
// flags override on top of all three at the command layer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

// Environment variable overrides.
const (
	EnvAPIKey     = "CARBONTRACK_API_KEY"
	EnvAPIBaseURL = "CARBONTRACK_API_URL"
	EnvLedgerPath = "CARBONTRACK_LEDGER"
	EnvUser       = "CARBONTRACK_USER"
	EnvLogLevel   = "CARBONTRACK_LOG_LEVEL"
	EnvLogFormat  = "CARBONTRACK_LOG_FORMAT"
	EnvConfigDir  = "CARBONTRACK_CONFIG_DIR"
)

// Defaults applied before the config file and environment are consulted.
const (
	DefaultOutputFormat   = "table"
	DefaultTimeoutSeconds = 30
	defaultLogLevel       = "info"
	defaultLogFormat      = "console"

	configFileName = "config.yaml"
	ledgerFileName = "emissions_data.csv"
	configDirName  = ".carbontrack"
)

// APIConfig holds estimation service settings.
type APIConfig struct {
	// Key is the bearer token for the Carbon Interface API.
	Key string `yaml:"key"`

	// BaseURL overrides the production endpoint, mainly for testing.
	BaseURL string `yaml:"base_url"`

	// TimeoutSeconds bounds each service call.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// LedgerConfig holds emissions ledger settings.
type LedgerConfig struct {
	// Path is the CSV ledger location.
	Path string `yaml:"path"`
}

// OutputConfig holds presentation settings.
type OutputConfig struct {
	// DefaultFormat is table, json, or ndjson.
	DefaultFormat string `yaml:"default_format"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// UsersConfig holds user attribution settings.
type UsersConfig struct {
	// Default is the user id recorded when --user is not given.
	Default string `yaml:"default"`
}

// Config is the full carbontrack configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Ledger  LedgerConfig  `yaml:"ledger"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Users   UsersConfig   `yaml:"users"`
}

// Dir returns the carbontrack configuration directory, honoring the
// CARBONTRACK_CONFIG_DIR override (used heavily by tests).
func Dir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return configDirName
	}
	return filepath.Join(home, configDirName)
}

// Path returns the config file location.
func Path() string {
	return filepath.Join(Dir(), configFileName)
}

// defaults returns a Config with built-in defaults applied.
func defaults() *Config {
	return &Config{
		API: APIConfig{
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		Ledger: LedgerConfig{
			Path: filepath.Join(Dir(), ledgerFileName),
		},
		Output: OutputConfig{
			DefaultFormat: DefaultOutputFormat,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// New loads the configuration: defaults, then the config file if one exists,
// then environment overrides. A missing config file is not an error.
func New() *Config {
	cfg := defaults()

	if data, err := os.ReadFile(Path()); err == nil {
		// Unparseable config falls back to defaults rather than aborting
		// so the CLI stays usable with a corrupted file.
		_ = yaml.Unmarshal(data, cfg)
	}

	applyEnvOverrides(cfg)
	return cfg
}

// applyEnvOverrides applies CARBONTRACK_* variables on top of cfg.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.API.Key = v
	}
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv(EnvLedgerPath); v != "" {
		cfg.Ledger.Path = v
	}
	if v := os.Getenv(EnvUser); v != "" {
		cfg.Users.Default = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = v
	}
}

// Save writes cfg to the config file, creating the directory if needed.
func (c *Config) Save() error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(Path(), data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Settable configuration keys, dotted-path form, for `config set/get`.
//
//nolint:gochecknoglobals // Compile-time key table.
var settableKeys = []string{
	"api.key",
	"api.base_url",
	"api.timeout_seconds",
	"ledger.path",
	"output.default_format",
	"logging.level",
	"logging.format",
	"logging.file",
	"users.default",
}

// SettableKeys lists the keys accepted by Set and Get, in display order.
func SettableKeys() []string {
	keys := make([]string, len(settableKeys))
	copy(keys, settableKeys)
	return keys
}

// Get returns the current value for a dotted-path key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "api.key":
		return c.API.Key, nil
	case "api.base_url":
		return c.API.BaseURL, nil
	case "api.timeout_seconds":
		return strconv.Itoa(c.API.TimeoutSeconds), nil
	case "ledger.path":
		return c.Ledger.Path, nil
	case "output.default_format":
		return c.Output.DefaultFormat, nil
	case "logging.level":
		return c.Logging.Level, nil
	case "logging.format":
		return c.Logging.Format, nil
	case "logging.file":
		return c.Logging.File, nil
	case "users.default":
		return c.Users.Default, nil
	default:
		return "", fmt.Errorf("unknown config key %q", key)
	}
}

// Set updates a dotted-path key. The caller is responsible for calling Save.
func (c *Config) Set(key, value string) error {
	switch key {
	case "api.key":
		c.API.Key = value
	case "api.base_url":
		c.API.BaseURL = value
	case "api.timeout_seconds":
		seconds, err := strconv.Atoi(value)
		if err != nil || seconds <= 0 {
			return fmt.Errorf("api.timeout_seconds must be a positive integer, got %q", value)
		}
		c.API.TimeoutSeconds = seconds
	case "ledger.path":
		c.Ledger.Path = value
	case "output.default_format":
		if value != "table" && value != "json" && value != "ndjson" {
			return fmt.Errorf("output.default_format must be table, json, or ndjson, got %q", value)
		}
		c.Output.DefaultFormat = value
	case "logging.level":
		c.Logging.Level = value
	case "logging.format":
		c.Logging.Format = value
	case "logging.file":
		c.Logging.File = value
	case "users.default":
		c.Users.Default = value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}

// Global config handling. The CLI loads configuration once per invocation
// and commands read it through GetGlobalConfig.
var (
	globalConfig *Config      //nolint:gochecknoglobals // Set once at startup by the root command
	globalMu     sync.RWMutex //nolint:gochecknoglobals // Protects globalConfig
)

// SetGlobalConfig stores the process-wide configuration.
func SetGlobalConfig(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = cfg
}

// GetGlobalConfig returns the process-wide configuration, loading it on
// first use.
func GetGlobalConfig() *Config {
	globalMu.RLock()
	cfg := globalConfig
	globalMu.RUnlock()
	if cfg != nil {
		return cfg
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalConfig == nil {
		globalConfig = New()
	}
	return globalConfig
}
