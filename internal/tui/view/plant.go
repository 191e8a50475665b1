package view

import (
	"strings"

	"github.com/Iron-Ham/sprout/internal/growth"
	"github.com/Iron-Ham/sprout/internal/tui/styles"
)

// Plant illustration rows. Every row has the same width so stages line up.
const (
	plantWidth = 9

	rowBlank       = "         "
	rowBloom       = "   (@)   "
	rowCanopy      = "   \\|/   "
	rowUpperLeaves = " >--|--< "
	rowBaseLeaves  = "  >-|-<  "
	rowStem        = "    |    "
	rowGround      = "~~~~~~~~~"
)

// PlantRows returns the illustration for a phase from top to bottom. Stages
// are additive: base leaves always, upper leaves from the growing phase, the
// canopy from almost ripe, and the bloom once harvested. Missing stages are
// blank rows so the height never changes.
func PlantRows(phase growth.Phase) []string {
	rows := []string{rowBlank, rowBlank, rowStem, rowBaseLeaves, rowStem, rowGround}
	if phase >= growth.PhaseGrowing {
		rows[2] = rowUpperLeaves
	}
	if phase >= growth.PhaseAlmostRipe {
		rows[1] = rowCanopy
	}
	if phase >= growth.PhaseHarvested {
		rows[0] = rowBloom
	}
	return rows
}

// RenderPlant returns the colored illustration for a phase.
func RenderPlant(phase growth.Phase) string {
	rows := PlantRows(phase)
	for i, row := range rows {
		rows[i] = colorRow(row)
	}
	return strings.Join(rows, "\n")
}

func colorRow(row string) string {
	var b strings.Builder
	for _, r := range row {
		s := string(r)
		switch r {
		case ' ':
			b.WriteString(s)
		case '|':
			b.WriteString(styles.Stem.Render(s))
		case '(', ')', '@':
			b.WriteString(styles.Bloom.Render(s))
		case '~':
			b.WriteString(styles.Soil.Render(s))
		default:
			b.WriteString(styles.Leaf.Render(s))
		}
	}
	return b.String()
}
