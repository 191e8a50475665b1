package tui

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg is sent periodically to advance the growth session
type tickMsg time.Time

// Commands

// tick returns a command that sends a tickMsg after d.
// This drives the growth clock and the redraw of the growing screen.
func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// ringBell returns a command that outputs a terminal bell character.
// It announces the harvest when the terminal is not focused.
func ringBell() tea.Cmd {
	return func() tea.Msg {
		// This works even when Bubbletea is in alt-screen mode
		_, _ = os.Stdout.Write([]byte{'\a'})
		return nil
	}
}
