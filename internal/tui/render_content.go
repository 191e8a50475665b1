package tui

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/sprout/internal/growth"
	"github.com/Iron-Ham/sprout/internal/tui/styles"
	"github.com/Iron-Ham/sprout/internal/tui/view"
)

// View renders the whole screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.modalOpen {
		b.WriteString(view.RenderModal(m.modalReason))
	} else {
		b.WriteString(m.renderBody())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderBody() string {
	switch m.snap.State {
	case growth.StateGrowing:
		return view.RenderGrowth(view.GrowthState{
			Plant:       m.snap.Plant,
			Phase:       m.snap.Phase,
			ElapsedDays: m.snap.ElapsedDays,
			TotalDays:   m.snap.TotalDays,
			Progress:    m.snap.Progress(),
			BarWidth:    m.progressWidth,
			Width:       m.width,
		})
	case growth.StateHarvested:
		return view.RenderHarvest(m.snap.Plant, m.width)
	default:
		return m.renderForm()
	}
}

// renderForm renders the prompt card and the plant form.
func (m Model) renderForm() string {
	var b strings.Builder

	b.WriteString(view.RenderCard(view.SelectPrompt, m.width))
	b.WriteString("\n")

	b.WriteString(styles.Label.Render(view.PlantLabel))
	b.WriteString("\n")
	b.WriteString(m.renderSelector())
	b.WriteString("\n")

	b.WriteString(styles.Label.Render(view.AreaLabel))
	b.WriteString("\n")
	field := styles.Field
	if m.focus == focusArea {
		field = styles.FieldFocused
	}
	b.WriteString(field.Render(m.areaInput.View()))
	b.WriteString("\n")

	button := styles.Button
	if m.focus == focusButton {
		button = styles.ButtonFocused
	}
	b.WriteString(button.Render(view.PlantButton))
	b.WriteString("\n")
	return b.String()
}

// renderSelector renders the plant options. Only the focused selector lists
// every option; otherwise it shows the current choice.
func (m Model) renderSelector() string {
	if m.focus != focusPlant {
		return styles.Field.Render(m.selectedPlant())
	}

	lines := make([]string, 0, len(m.options))
	for i, opt := range m.options {
		if i == m.selectIndex {
			lines = append(lines, styles.DropdownItemSelected.Render(fmt.Sprintf("> %s ", opt)))
		} else {
			lines = append(lines, styles.DropdownItem.Render(fmt.Sprintf("  %s ", opt)))
		}
	}
	return styles.FieldFocused.Render(strings.Join(lines, "\n"))
}

func (m Model) renderHelp() string {
	state := view.HelpBarState{
		State:     m.snap.State,
		ModalOpen: m.modalOpen,
	}
	if next, remaining, ok := m.nextPhaseIn(); ok {
		state.NextPhase = view.NextPhaseLabel(next, remaining)
	}
	return view.RenderHelpBar(state)
}
