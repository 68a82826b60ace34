package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "WARSTATS_CONFIG"

// Config represents the application configuration.
type Config struct {
	// Report output defaults
	Report ReportConfig `toml:"report"`

	// Cell text -> color name, applied by the table renderer
	Colors map[string]string `toml:"colors"`

	// Log file watching
	Watch WatchConfig `toml:"watch"`

	// HTML chart settings
	Chart ChartConfig `toml:"chart"`
}

// ReportConfig contains defaults for the report command.
type ReportConfig struct {
	Format string `toml:"format"` // table, csv or json
	Focus  string `toml:"focus"`  // player row to mark with ">"
	Totals bool   `toml:"totals"` // append a TOTAL row
}

// WatchConfig contains log file watching settings.
type WatchConfig struct {
	PollInterval string `toml:"poll_interval"` // Backup polling interval (e.g., "2s")
	MinInterval  string `toml:"min_interval"`  // Minimum time between re-renders
}

// ChartConfig contains chart rendering settings.
type ChartConfig struct {
	Title  string `toml:"title"`
	Width  string `toml:"width"`
	Height string `toml:"height"`
	Theme  string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Report: ReportConfig{
			Format: "table",
		},
		Colors: map[string]string{},
		Watch: WatchConfig{
			PollInterval: "2s",
			MinInterval:  "500ms",
		},
		Chart: ChartConfig{
			Title:  "Troops per player",
			Width:  "900px",
			Height: "500px",
			Theme:  "light",
		},
	}
}

// DefaultPath returns ~/.warstats/config.toml, or the WARSTATS_CONFIG override.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".warstats", "config.toml"), nil
}

// Load reads the configuration at path. A missing file yields the defaults;
// keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks the fields that are parsed later.
func (c *Config) Validate() error {
	switch c.Report.Format {
	case "table", "csv", "json":
	default:
		return fmt.Errorf("report.format %q: want table, csv or json", c.Report.Format)
	}
	if _, err := c.Watch.PollDuration(); err != nil {
		return err
	}
	if _, err := c.Watch.MinDuration(); err != nil {
		return err
	}
	return nil
}

// PollDuration parses PollInterval.
func (w WatchConfig) PollDuration() (time.Duration, error) {
	d, err := time.ParseDuration(w.PollInterval)
	if err != nil {
		return 0, fmt.Errorf("watch.poll_interval: %w", err)
	}
	return d, nil
}

// MinDuration parses MinInterval.
func (w WatchConfig) MinDuration() (time.Duration, error) {
	d, err := time.ParseDuration(w.MinInterval)
	if err != nil {
		return 0, fmt.Errorf("watch.min_interval: %w", err)
	}
	return d, nil
}
