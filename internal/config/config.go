package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/Iron-Ham/sprout/internal/catalog"
	"github.com/spf13/viper"
)

// Config represents the complete sprout configuration
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation" yaml:"simulation"`
	TUI        TUIConfig        `mapstructure:"tui" yaml:"tui"`
	Catalog    CatalogConfig    `mapstructure:"catalog" yaml:"catalog"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging"`
}

// SimulationConfig controls the growth clock and phase boundaries
type SimulationConfig struct {
	// VirtualDayMs is how many real milliseconds make one virtual day (default: 60000)
	VirtualDayMs int `mapstructure:"virtual_day_ms" yaml:"virtual_day_ms"`
	// SproutThreshold is the elapsed/total ratio at which phase 1 starts (default: 0.3)
	SproutThreshold float64 `mapstructure:"sprout_threshold" yaml:"sprout_threshold"`
	// RipeningThreshold is the elapsed/total ratio at which phase 2 starts (default: 0.7)
	RipeningThreshold float64 `mapstructure:"ripening_threshold" yaml:"ripening_threshold"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// RefreshIntervalMs is the redraw period in milliseconds (default: 100, min: 10, max: 1000)
	RefreshIntervalMs int `mapstructure:"refresh_interval_ms" yaml:"refresh_interval_ms"`
	// ProgressWidth is the width of the growth progress bar in columns (default: 30, min: 10, max: 80)
	ProgressWidth int `mapstructure:"progress_width" yaml:"progress_width"`
	// AltScreen runs the UI in the terminal's alternate screen (default: true)
	AltScreen bool `mapstructure:"alt_screen" yaml:"alt_screen"`
}

// CatalogConfig overrides the built-in plant table
type CatalogConfig struct {
	// Plants replaces the built-in catalog when non-empty
	Plants []catalog.Plant `mapstructure:"plants" yaml:"plants"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// Enabled turns on the JSON log file (default: true)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `mapstructure:"level" yaml:"level"`
	// Dir is where sprout.log is written; empty means the config directory
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			VirtualDayMs:      60000, // 1 real minute = 1 virtual day
			SproutThreshold:   0.3,
			RipeningThreshold: 0.7,
		},
		TUI: TUIConfig{
			RefreshIntervalMs: 100,
			ProgressWidth:     30,
			AltScreen:         true,
		},
		Catalog: CatalogConfig{
			Plants: []catalog.Plant{}, // Empty means use the embedded catalog
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Dir:     "",
		},
	}
}

// VirtualDay returns the virtual day length as a time.Duration
func (c *SimulationConfig) VirtualDay() time.Duration {
	return time.Duration(c.VirtualDayMs) * time.Millisecond
}

// RefreshInterval returns the redraw period as a time.Duration
func (c *TUIConfig) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshIntervalMs) * time.Millisecond
}

// LogDir returns the directory the log file should be written to
func (c *LoggingConfig) LogDir() string {
	if c.Dir != "" {
		return c.Dir
	}
	return ConfigDir()
}

// BuildCatalog returns the configured plant catalog, falling back to the
// embedded defaults when no override is set
func (c *Config) BuildCatalog() (*catalog.Catalog, error) {
	if len(c.Catalog.Plants) == 0 {
		return catalog.Default(), nil
	}
	return catalog.New(c.Catalog.Plants)
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Simulation defaults
	viper.SetDefault("simulation.virtual_day_ms", defaults.Simulation.VirtualDayMs)
	viper.SetDefault("simulation.sprout_threshold", defaults.Simulation.SproutThreshold)
	viper.SetDefault("simulation.ripening_threshold", defaults.Simulation.RipeningThreshold)

	// TUI defaults
	viper.SetDefault("tui.refresh_interval_ms", defaults.TUI.RefreshIntervalMs)
	viper.SetDefault("tui.progress_width", defaults.TUI.ProgressWidth)
	viper.SetDefault("tui.alt_screen", defaults.TUI.AltScreen)

	// Catalog defaults
	viper.SetDefault("catalog.plants", defaults.Catalog.Plants)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "sprout")
	}
	// Fall back to ~/.config/sprout
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sprout"
	}
	return filepath.Join(home, ".config", "sprout")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
