package view

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Iron-Ham/sprout/internal/tui/styles"
)

// RenderProgressBar renders a progress bar with the given fraction and width.
// The fraction is clamped to [0, 1] and the filled part is rounded down.
func RenderProgressBar(progress float64, width int) string {
	filled, empty := barCells(progress, width)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return fmt.Sprintf("[%s]", bar)
}

// RenderStyledProgressBar is RenderProgressBar with the filled part in leaf
// green and the track muted.
func RenderStyledProgressBar(progress float64, width int) string {
	filled, empty := barCells(progress, width)
	return "[" +
		styles.Leaf.Render(strings.Repeat("█", filled)) +
		styles.Track.Render(strings.Repeat("░", empty)) +
		"]"
}

func barCells(progress float64, width int) (filled, empty int) {
	if width < 0 {
		width = 0
	}
	if math.IsNaN(progress) || progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled = int(progress * float64(width))
	return filled, width - filled
}

// FormatDuration formats a duration for display (e.g., "5m 30s").
// Negative durations are shown as zero.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
}
