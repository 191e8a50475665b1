package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Iron-Ham/sprout/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View Sprout configuration",
	Long: `View Sprout configuration.

Without arguments, displays the effective configuration.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration as YAML",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/sprout/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return writeConfigYAML(cmd.OutOrStdout(), cfg, viper.ConfigFileUsed())
}

func writeConfigYAML(w io.Writer, cfg *config.Config, source string) error {
	if source == "" {
		source = "(none - using defaults)"
	}
	if _, err := fmt.Fprintf(w, "# Config file: %s\n", source); err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}

// defaultConfigContent is the commented file written by 'config init'.
const defaultConfigContent = `# Sprout Configuration

# Growth clock and phase boundaries
simulation:
  # Real milliseconds per virtual day (60000 = 1 minute)
  virtual_day_ms: 60000
  # Share of the total days at which phase 2 and phase 3 start
  sprout_threshold: 0.3
  ripening_threshold: 0.7

# TUI (terminal user interface) settings
tui:
  # Redraw period in milliseconds (10-1000)
  refresh_interval_ms: 100
  # Progress bar width in columns (10-80)
  progress_width: 30
  # Use the terminal's alternate screen
  alt_screen: true

# Replace the built-in plants (leave empty for the defaults)
catalog:
  plants: []
  # plants:
  #   - name: "🌻 Girassol"
  #     base_days: 9

# JSON log file
logging:
  enabled: true
  # debug, info, warn, error
  level: info
  # Directory for sprout.log (empty = config directory)
  dir: ""
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s", configFile)
	}

	// Create config directory
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(defaultConfigContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created config file at %s\n", configFile)
	fmt.Fprintln(out, "Edit this file to customize Sprout's behavior.")
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", config.ConfigFile())
	}

	// Also show config search paths
	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	fmt.Fprintf(out, "  2. $HOME/.config/sprout/config.yaml\n")
	fmt.Fprintf(out, "  3. ./config.yaml (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: SPROUT_* (e.g., SPROUT_SIMULATION_VIRTUAL_DAY_MS)")
	return nil
}
