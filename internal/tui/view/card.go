package view

import (
	"strings"

	"github.com/Iron-Ham/sprout/internal/growth"
	"github.com/Iron-Ham/sprout/internal/tui/styles"
	"github.com/Iron-Ham/sprout/internal/util"
	"github.com/charmbracelet/lipgloss"
)

// cardChrome is the horizontal space taken by the card border and padding.
const cardChrome = 8

// RenderCard renders text centered in a rounded card. maxWidth bounds the
// whole card; the text is truncated to fit. A non-positive maxWidth leaves
// the text untouched.
func RenderCard(text string, maxWidth int) string {
	if maxWidth > 0 {
		text = util.TruncateANSI(text, maxWidth-cardChrome)
	}
	return styles.Card.Render(text)
}

// RenderModal renders the blocking invalid-input notification. reason is
// the machine-readable rejection reason and may be empty.
func RenderModal(reason string) string {
	var b strings.Builder
	b.WriteString(styles.ErrorMsg.Render(InvalidInput))
	if reason != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.Muted.Render("(" + reason + ")"))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.Muted.Render("pressione qualquer tecla para continuar"))
	return styles.Modal.Render(b.String())
}

// GrowthState holds what the growing screen needs from a snapshot.
type GrowthState struct {
	Plant       string
	Phase       growth.Phase
	ElapsedDays int
	TotalDays   int
	Progress    float64

	// BarWidth is the number of cells in the progress bar.
	BarWidth int

	// Width is the available width; zero disables centering.
	Width int
}

// RenderGrowth renders the growing screen: title, illustration, progress
// bar, days label and phase caption, stacked and centered.
func RenderGrowth(state GrowthState) string {
	block := lipgloss.JoinVertical(lipgloss.Center,
		styles.PlantTitle.Render(GrowthTitle(state.Plant)),
		"",
		RenderPlant(state.Phase),
		"",
		RenderStyledProgressBar(state.Progress, state.BarWidth),
		styles.DaysLabel.Render(DaysLabel(state.ElapsedDays, state.TotalDays)),
		"",
		styles.Caption.Foreground(styles.PhaseColor(state.Phase.String())).Render(Caption(state.Phase)),
	)
	return place(block, state.Width)
}

// RenderHarvest renders the harvest card above the fully grown plant.
func RenderHarvest(plant string, width int) string {
	block := lipgloss.JoinVertical(lipgloss.Center,
		RenderCard(HarvestMessage(plant), width),
		"",
		RenderPlant(growth.PhaseHarvested),
	)
	return place(block, width)
}

func place(block string, width int) string {
	if width <= 0 || lipgloss.Width(block) >= width {
		return block
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
