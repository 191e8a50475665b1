package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Iron-Ham/sprout/internal/config"
	"github.com/Iron-Ham/sprout/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "sprout",
	Short: "Terminal plant-growth simulator",
	Long: `Sprout is a small terminal simulation: pick a plant and a planted area,
then watch it grow through four phases until harvest. One virtual day
passes every real minute by default.

Without a terminal on stdout, pass --plant and --area to get the same
headless progress as 'sprout watch'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

var (
	rootPlant string
	rootArea  string
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/sprout/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.Flags().StringVar(&rootPlant, "plant", "", "plant to pre-select, e.g. \"🥕 Cenoura\"")
	rootCmd.Flags().StringVar(&rootArea, "area", "", "planted area in m² to pre-fill")
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/sprout")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("SPROUT")
	// Replace dots with underscores for nested keys in env vars
	// e.g., SPROUT_SIMULATION_VIRTUAL_DAY_MS for simulation.virtual_day_ms
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

func runRoot(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	stdout := int(os.Stdout.Fd())
	if !term.IsTerminal(stdout) {
		if rootPlant == "" || rootArea == "" {
			return fmt.Errorf("stdout is not a terminal: pass --plant and --area for headless output, or use 'sprout watch'")
		}
		rt.logger.Info("no terminal, running headless", "plant", rootPlant)
		return runHeadless(cmd.Context(), rt, rootPlant, rootArea, cmd.OutOrStdout())
	}

	if config.Watch(func(name string) {
		rt.logger.Info("config file changed, restart to apply", "file", name)
	}) {
		rt.logger.Debug("watching config file", "file", viper.ConfigFileUsed())
	}

	progressWidth := rt.cfg.TUI.ProgressWidth
	if cols, _, err := term.GetSize(stdout); err == nil {
		progressWidth = fitProgressWidth(progressWidth, cols)
	}

	app := tui.New(rt.controller, tui.Options{
		RefreshInterval: rt.cfg.TUI.RefreshInterval(),
		ProgressWidth:   progressWidth,
		Plant:           rootPlant,
		Area:            rootArea,
		Logger:          rt.logger,
	}, rt.cfg.TUI.AltScreen)

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// fitProgressWidth shrinks the configured bar width so the bar and its
// brackets fit a terminal of cols columns with a small margin.
func fitProgressWidth(width, cols int) int {
	const margin = 6
	if cols <= 0 {
		return width
	}
	if limit := cols - margin; width > limit {
		width = limit
	}
	if width < 1 {
		width = 1
	}
	return width
}
