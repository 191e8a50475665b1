package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Iron-Ham/sprout/internal/growth"
	"github.com/Iron-Ham/sprout/internal/tui/styles"
	"github.com/Iron-Ham/sprout/internal/tui/view"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show when each growth phase starts",
	Long: `Project a planting without starting it: the virtual days spent in each
phase and the real time after planting at which each phase begins.

Examples:
  sprout schedule --plant "🥕 Cenoura" --area 200
  sprout schedule --plant "🍅 Tomate" --area 33 --csv tomate.csv
  sprout schedule --plant "🍅 Tomate" --area 33 --csv -`,
	RunE: runSchedule,
}

var (
	schedulePlant string
	scheduleArea  string
	scheduleCSV   string
)

func init() {
	rootCmd.AddCommand(scheduleCmd)

	scheduleCmd.Flags().StringVar(&schedulePlant, "plant", "", "plant to project (see 'sprout plants')")
	scheduleCmd.Flags().StringVar(&scheduleArea, "area", "", "planted area in m²")
	scheduleCmd.Flags().StringVar(&scheduleCSV, "csv", "", "write the schedule as CSV to this file (- for stdout)")
	_ = scheduleCmd.MarkFlagRequired("plant")
	_ = scheduleCmd.MarkFlagRequired("area")
}

func runSchedule(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	area, err := growth.ParseArea(scheduleArea)
	if err != nil {
		return err
	}
	session, spans, err := rt.controller.Schedule(schedulePlant, area)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch scheduleCSV {
	case "":
		return writeScheduleTable(out, session, spans, rt.controller)
	case "-":
		return writeScheduleCSV(out, spans)
	default:
		f, err := os.Create(scheduleCSV)
		if err != nil {
			return fmt.Errorf("failed to create CSV file: %w", err)
		}
		if err := writeScheduleCSV(f, spans); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to close CSV file: %w", err)
		}
		fmt.Fprintf(out, "Schedule written to %s\n", scheduleCSV)
		return nil
	}
}

func writeScheduleCSV(w io.Writer, spans []growth.PhaseSpan) error {
	if err := gocsv.Marshal(&spans, w); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

func writeScheduleTable(w io.Writer, session growth.Session, spans []growth.PhaseSpan, ctrl *growth.Controller) error {
	harvestAt := spans[len(spans)-1].StartsAt

	var b strings.Builder
	fmt.Fprintf(&b, "%s, %s m²: %d dias\n", session.Plant,
		strconv.FormatFloat(session.Area, 'f', -1, 64), session.TotalDays)
	fmt.Fprintf(&b, "%s\n\n", styles.Subtitle.Render(
		fmt.Sprintf("1 dia = %s, colheita em %s", view.DescribeVirtualDay(ctrl.VirtualDay()), view.FormatDuration(harvestAt))))

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.BorderColor)).
		Headers("FASE", "DIAS", "INÍCIO").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.HelpKey.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, s := range spans {
		days := strconv.Itoa(s.FirstDay)
		if s.LastDay != s.FirstDay {
			days = fmt.Sprintf("%d-%d", s.FirstDay, s.LastDay)
		}
		t.Row(view.Caption(s.Phase), days, "+"+view.FormatDuration(s.StartsAt))
	}
	b.WriteString(t.Render())
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
