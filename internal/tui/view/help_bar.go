package view

import (
	"strings"

	"github.com/Iron-Ham/sprout/internal/growth"
	"github.com/Iron-Ham/sprout/internal/tui/styles"
)

// HelpBarState holds the state needed to render the help bar.
type HelpBarState struct {
	// State is the controller state being shown.
	State growth.State

	// ModalOpen indicates the invalid-input modal is blocking the screen.
	ModalOpen bool

	// NextPhase is the footer hint for a growing session, if any.
	NextPhase string
}

type helpEntry struct {
	key, desc string
}

// RenderHelpBar renders the key hints for the current screen.
func RenderHelpBar(state HelpBarState) string {
	var entries []helpEntry
	switch {
	case state.ModalOpen:
		entries = []helpEntry{{"[qualquer tecla]", "fechar"}}
	case state.State == growth.StateSelecting:
		entries = []helpEntry{
			{"[tab]", "campo"},
			{"[↑/↓]", "planta"},
			{"[enter]", "plantar"},
			{"[q]", "sair"},
		}
	case state.State == growth.StateGrowing:
		entries = []helpEntry{{"[q]", "sair"}}
	case state.State == growth.StateHarvested:
		entries = []helpEntry{
			{"[n]", "plantar de novo"},
			{"[q]", "sair"},
		}
	}

	parts := make([]string, 0, len(entries)+1)
	for _, e := range entries {
		parts = append(parts, styles.HelpKey.Render(e.key)+" "+e.desc)
	}
	if state.NextPhase != "" && !state.ModalOpen {
		parts = append(parts, styles.Muted.Render(state.NextPhase))
	}
	return styles.HelpBar.Render(strings.Join(parts, "  "))
}
