package contract

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/huangsam/trajectory/schema"
)

// Default values for configuration.
const (
	DefaultTimeout   = 30 * time.Second
	DefaultPrecision = 1
)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for a trajectory run.
// This struct remains the "final, validated" config.
type Config struct {
	Selection  schema.SelectionMode
	Threshold  int64    // Minimum total confirmed cases (threshold selection)
	Countries  []string // Requested identifiers or names (list selection), original casing
	Smoothing  bool
	Window     int // Odd moving-average window in days
	Degree     int // Number of smoothing passes
	Visibility int64

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)

	APIURL  string
	Timeout time.Duration

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	UseEmojis bool // Enable emojis in progress lines
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Precision        int    `mapstructure:"precision"`
	Width            int    `mapstructure:"width"`
	APIURL           string `mapstructure:"api-url"`
	Timeout          string `mapstructure:"timeout"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`
	Emoji            string `mapstructure:"emoji"`
	Color            string `mapstructure:"color"`

	// --- Fields from runCmd.Flags() ---
	Threshold  int64    `mapstructure:"threshold"`
	Countries  []string `mapstructure:"countries"`
	Smoothing  string   `mapstructure:"smoothing"`
	Window     int      `mapstructure:"window"`
	Degree     int      `mapstructure:"degree"`
	Visibility int64    `mapstructure:"visibility"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Countries != nil {
		clone.Countries = slices.Clone(c.Countries)
	}
	return &clone
}

// ConfigParams returns the subset of the config recorded with each tracked run.
func (c *Config) ConfigParams() map[string]any {
	return map[string]any{
		"selection": string(c.Selection),
		"threshold": c.Threshold,
		"countries": c.Countries,
		"smoothing": c.Smoothing,
		"window":    c.Window,
		"degree":    c.Degree,
		"api_url":   c.APIURL,
	}
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processSelection(cfg, input.Threshold, input.Countries); err != nil {
		return err
	}
	if err := processSmoothing(cfg, input); err != nil {
		return err
	}
	if err := processSource(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// ParseDatabaseBackend normalizes a backend string; empty means tracking is disabled.
func ParseDatabaseBackend(s string) (schema.DatabaseBackend, error) {
	if s == "" {
		return schema.NoneBackend, nil
	}
	backend := schema.DatabaseBackend(strings.ToLower(s))
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return "", fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", s)
	}
	return backend, nil
}

// validateSimpleInputs processes and validates output, display and backend fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Precision < 0 || input.Precision > 3 {
		return fmt.Errorf("precision must be between 0 and 3 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet, svg", input.Output)
	}
	if (cfg.Output == schema.ParquetOut || cfg.Output == schema.SVGOut) && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for %s output", cfg.Output)
	}

	backend, err := ParseDatabaseBackend(input.HistoryBackend)
	if err != nil {
		return err
	}
	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = input.HistoryDBConnect
	return ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect)
}

// processSelection decides the selection mode. A threshold and a country list
// are mutually exclusive.
func processSelection(cfg *Config, threshold int64, countries []string) error {
	if threshold < 0 {
		return fmt.Errorf("threshold must not be negative (received %d)", threshold)
	}

	var cleaned []string
	seen := make(map[string]struct{})
	for _, c := range countries {
		for part := range strings.SplitSeq(c, ",") {
			name := strings.TrimSpace(part)
			if name == "" {
				continue
			}
			key := strings.ToLower(name)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			cleaned = append(cleaned, name)
		}
	}

	switch {
	case threshold > 0 && len(cleaned) > 0:
		return fmt.Errorf("%w: --threshold and --countries cannot be used together", schema.ErrConfigurationConflict)
	case threshold > 0:
		cfg.Selection = schema.ThresholdSelection
	case len(cleaned) > 0:
		cfg.Selection = schema.ListSelection
	default:
		cfg.Selection = schema.NoSelection
	}
	cfg.Threshold = threshold
	cfg.Countries = cleaned
	return nil
}

// processSmoothing validates the moving-average parameters.
func processSmoothing(cfg *Config, input *ConfigRawInput) error {
	smoothing, err := ParseBoolString(input.Smoothing)
	if err != nil {
		return fmt.Errorf("invalid --smoothing value: %w", err)
	}
	cfg.Smoothing = smoothing

	if err := ValidateSmoothing(input.Window, input.Degree); err != nil {
		return err
	}
	cfg.Window = input.Window
	cfg.Degree = input.Degree

	if input.Visibility < 0 {
		return fmt.Errorf("visibility must not be negative (received %d)", input.Visibility)
	}
	cfg.Visibility = input.Visibility
	return nil
}

// ValidateSmoothing checks that window is odd and positive and degree is non-negative.
func ValidateSmoothing(window, degree int) error {
	if window <= 0 || window%2 == 0 {
		return fmt.Errorf("%w: window must be an odd positive number of days (received %d)", schema.ErrInvalidSmoothing, window)
	}
	if degree < 0 {
		return fmt.Errorf("%w: degree must not be negative (received %d)", schema.ErrInvalidSmoothing, degree)
	}
	return nil
}

// processSource validates the upstream API location and timeout.
func processSource(cfg *Config, input *ConfigRawInput) error {
	apiURL := strings.TrimRight(strings.TrimSpace(input.APIURL), "/")
	u, err := url.Parse(apiURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid api-url '%s'. must be an absolute http or https URL", input.APIURL)
	}
	cfg.APIURL = apiURL

	cfg.Timeout = DefaultTimeout
	if input.Timeout != "" {
		timeout, err := time.ParseDuration(input.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout '%s': %w", input.Timeout, err)
		}
		if timeout <= 0 {
			return fmt.Errorf("timeout must be positive (received %s)", input.Timeout)
		}
		cfg.Timeout = timeout
	}
	return nil
}

// RevalidateSelection re-runs selection and smoothing validation on a cloned
// config after callers such as the MCP server override individual fields.
func RevalidateSelection(cfg *Config) error {
	if err := processSelection(cfg, cfg.Threshold, cfg.Countries); err != nil {
		return err
	}
	return ValidateSmoothing(cfg.Window, cfg.Degree)
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}
