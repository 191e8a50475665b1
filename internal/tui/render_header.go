package tui

import (
	"strings"

	"github.com/Iron-Ham/sprout/internal/tui/styles"
	"github.com/Iron-Ham/sprout/internal/tui/view"
	"github.com/Iron-Ham/sprout/internal/util"
	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the app title with the day counter on the right.
// The counter moves to its own line when the terminal is too narrow.
func (m Model) renderHeader() string {
	title := styles.Title.Render(view.AppTitle(m.controller.VirtualDay()))
	counter := styles.DayCounter.Render(view.DayCounter(m.snap.ElapsedDays))

	width := m.width - 4
	gap := width - lipgloss.Width(title) - lipgloss.Width(counter)

	var line string
	if gap >= 2 {
		line = title + strings.Repeat(" ", gap) + counter
	} else {
		line = util.CenterLine(title, width) + "\n" + util.CenterLine(counter, width)
	}

	if width <= 0 {
		return styles.Header.Render(line)
	}
	return styles.Header.Width(width).Render(line)
}
