package tui

import (
	"github.com/Iron-Ham/sprout/internal/growth"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeypress routes a key to the modal or the handler of the current
// controller state.
func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// Any key dismisses the modal and nothing else happens.
	if m.modalOpen {
		m.modalOpen = false
		m.modalReason = ""
		return m, nil
	}

	switch m.controller.State() {
	case growth.StateSelecting:
		return m.handleSelectingKeypress(msg)
	case growth.StateHarvested:
		if msg.String() == "n" {
			return m.plantAgain()
		}
	}

	if msg.String() == "q" {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleSelectingKeypress drives the plant form.
func (m Model) handleSelectingKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "tab":
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil

	case "shift+tab":
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, nil

	case "ctrl+p":
		return m.plant()

	case "enter":
		if m.focus == focusPlant {
			m.setFocus(focusArea)
			return m, nil
		}
		return m.plant()
	}

	switch m.focus {
	case focusPlant:
		switch msg.String() {
		case "up", "k":
			m.selectIndex--
			if m.selectIndex < 0 {
				m.selectIndex = len(m.options) - 1
			}
		case "down", "j":
			m.selectIndex++
			if m.selectIndex >= len(m.options) {
				m.selectIndex = 0
			}
		}
		return m, nil

	case focusArea:
		var cmd tea.Cmd
		m.areaInput, cmd = m.areaInput.Update(msg)
		return m, cmd
	}

	return m, nil
}
