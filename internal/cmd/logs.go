package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Iron-Ham/sprout/internal/config"
	"github.com/Iron-Ham/sprout/internal/logging"
	"github.com/Iron-Ham/sprout/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View the Sprout log",
	Long: `View and filter the JSON log written while growing plants.

Examples:
  # Show the last 50 entries
  sprout logs

  # Show everything
  sprout logs -n 0

  # Only warnings and errors, e.g. rejected plantings
  sprout logs --level warn

  # Entries for one plant in the last hour
  sprout logs --plant "🥕 Cenoura" --since 1h`,
	RunE: runLogs,
}

var (
	logsTail  int
	logsLevel string
	logsSince string
	logsPlant string
	logsGrep  string
)

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().IntVarP(&logsTail, "tail", "n", 50, "Number of entries to show (0 for all)")
	logsCmd.Flags().StringVar(&logsLevel, "level", "", "Filter by minimum level (debug/info/warn/error)")
	logsCmd.Flags().StringVar(&logsSince, "since", "", "Show logs since duration ago (e.g., 1h, 30m)")
	logsCmd.Flags().StringVar(&logsPlant, "plant", "", "Only entries for this plant")
	logsCmd.Flags().StringVar(&logsGrep, "grep", "", "Only entries whose message contains this text")
}

func runLogs(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	out := cmd.OutOrStdout()
	logPath := filepath.Join(cfg.Logging.LogDir(), logging.LogFileName)
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		fmt.Fprintln(out, "No logs found.")
		fmt.Fprintln(out, "Logs are stored at:", logPath)
		return nil
	}

	filter := logging.LogFilter{
		Plant:           logsPlant,
		MessageContains: logsGrep,
	}
	if logsLevel != "" {
		filter.Level = logging.ParseLevel(logsLevel)
	}
	if logsSince != "" {
		duration, err := time.ParseDuration(logsSince)
		if err != nil {
			return fmt.Errorf("invalid duration format: %w", err)
		}
		filter.Since = time.Now().Add(-duration)
	}

	entries, err := logging.ReadLogFile(logPath)
	if err != nil {
		return err
	}
	entries = logging.TailLogs(logging.FilterLogs(entries, filter), logsTail)
	return displayLogs(out, entries)
}

func displayLogs(w io.Writer, entries []logging.LogEntry) error {
	for i := range entries {
		if _, err := fmt.Fprintln(w, formatLogEntry(&entries[i])); err != nil {
			return err
		}
	}
	return nil
}

// levelStyle returns the style used for a log level tag
func levelStyle(level string) lipgloss.Style {
	switch strings.ToUpper(level) {
	case logging.LevelDebug:
		return styles.Muted
	case logging.LevelInfo:
		return styles.Leaf
	case logging.LevelWarn:
		return styles.Bloom
	case logging.LevelError:
		return styles.ErrorMsg
	default:
		return styles.Text
	}
}

// formatLogEntry formats a log entry for terminal output
func formatLogEntry(entry *logging.LogEntry) string {
	var sb strings.Builder

	sb.WriteString(styles.Muted.Render("[" + entry.Timestamp.Format("15:04:05.000") + "]"))
	sb.WriteString(" ")
	sb.WriteString(levelStyle(entry.Level).Render("[" + strings.ToUpper(entry.Level) + "]"))
	sb.WriteString(" ")
	sb.WriteString(entry.Message)

	if entry.Plant != "" {
		sb.WriteString(" ")
		sb.WriteString(styles.HelpKey.Render("plant="))
		sb.WriteString(entry.Plant)
	}
	if entry.State != "" {
		sb.WriteString(" ")
		sb.WriteString(styles.HelpKey.Render("state="))
		sb.WriteString(entry.State)
	}

	// Extra fields in a stable order
	keys := make([]string, 0, len(entry.Attrs))
	for k := range entry.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteString(" ")
		sb.WriteString(styles.HelpKey.Render(k + "="))
		sb.WriteString(fmt.Sprintf("%v", entry.Attrs[k]))
	}

	return sb.String()
}
