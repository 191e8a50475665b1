package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/Iron-Ham/sprout/internal/catalog"
	"github.com/Iron-Ham/sprout/internal/config"
	"github.com/Iron-Ham/sprout/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var plantsCmd = &cobra.Command{
	Use:   "plants",
	Short: "List the plants you can grow",
	Long: `List the plant catalog with the days each plant needs for 100 m².

A planting of A m² takes ceil(days × A / 100) virtual days.
The catalog can be replaced with the catalog.plants config key.`,
	RunE: runPlants,
}

var plantsJSON bool

func init() {
	rootCmd.AddCommand(plantsCmd)

	plantsCmd.Flags().BoolVar(&plantsJSON, "json", false, "Output as JSON")
}

func runPlants(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cat, err := cfg.BuildCatalog()
	if err != nil {
		return fmt.Errorf("invalid plant catalog: %w", err)
	}

	if plantsJSON {
		return writePlantsJSON(cmd.OutOrStdout(), cat)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), renderPlantsTable(cat))
	return err
}

func writePlantsJSON(w io.Writer, cat *catalog.Catalog) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(cat.Plants())
}

func renderPlantsTable(cat *catalog.Catalog) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.BorderColor)).
		Headers("PLANTA", "DIAS / 100 m²").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.HelpKey.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, p := range cat.Plants() {
		t.Row(p.Name, strconv.Itoa(p.BaseDays))
	}
	return t.Render()
}
