package tui

import (
	"time"

	"github.com/Iron-Ham/sprout/internal/catalog"
	"github.com/Iron-Ham/sprout/internal/errors"
	"github.com/Iron-Ham/sprout/internal/growth"
	"github.com/Iron-Ham/sprout/internal/logging"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Defaults used when Options leaves a field zero.
const (
	DefaultRefreshInterval = 100 * time.Millisecond
	DefaultProgressWidth   = 30
)

// focusField is the form control receiving keys while selecting
type focusField int

const (
	focusPlant focusField = iota
	focusArea
	focusButton
	focusCount
)

// Options configures a Model.
type Options struct {
	// RefreshInterval is the delay between ticks.
	RefreshInterval time.Duration

	// ProgressWidth is the number of cells in the progress bar.
	ProgressWidth int

	// Plant and Area pre-fill the form.
	Plant string
	Area  string

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	Logger *logging.Logger
}

// Model is the Bubbletea model for the growth screen.
type Model struct {
	controller *growth.Controller
	logger     *logging.Logger

	// Selection form
	options     []string // catalog.NoneSelected followed by the catalog names
	selectIndex int
	areaInput   textinput.Model
	focus       focusField

	// Invalid-input modal
	modalOpen   bool
	modalReason string

	// Growth display
	snap    growth.Snapshot
	lastNow time.Time

	refresh       time.Duration
	progressWidth int
	now           func() time.Time

	width    int
	height   int
	quitting bool
}

// NewModel creates a model showing the controller's current state.
func NewModel(ctrl *growth.Controller, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "100"
	ti.CharLimit = 16
	ti.Width = 12
	ti.SetValue(opts.Area)

	options := append([]string{catalog.NoneSelected}, ctrl.Catalog().Names()...)
	selectIndex := 0
	for i, name := range options {
		if opts.Plant != "" && name == opts.Plant {
			selectIndex = i
			break
		}
	}

	m := Model{
		controller:    ctrl,
		logger:        opts.Logger,
		options:       options,
		selectIndex:   selectIndex,
		areaInput:     ti,
		refresh:       opts.RefreshInterval,
		progressWidth: opts.ProgressWidth,
		now:           opts.Now,
		snap:          ctrl.Snapshot(),
	}
	if m.logger == nil {
		m.logger = logging.NopLogger()
	}
	if m.refresh <= 0 {
		m.refresh = DefaultRefreshInterval
	}
	if m.progressWidth <= 0 {
		m.progressWidth = DefaultProgressWidth
	}
	if m.now == nil {
		m.now = time.Now
	}
	m.lastNow = m.now()

	// Start on the first field the user still has to fill.
	if selectIndex > 0 {
		m.setFocus(focusArea)
	}
	return m
}

// Init starts the refresh tick.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick(m.refresh))
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m.handleTick(time.Time(msg))

	case tea.KeyMsg:
		return m.handleKeypress(msg)
	}

	// Cursor blink and other textinput messages
	if m.focus == focusArea {
		var cmd tea.Cmd
		m.areaInput, cmd = m.areaInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleTick advances the session and schedules the next tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	prev := m.snap.State
	m.lastNow = now
	m.snap = m.controller.Advance(now)

	cmds := []tea.Cmd{tick(m.refresh)}
	if prev == growth.StateGrowing && m.snap.State == growth.StateHarvested {
		cmds = append(cmds, ringBell())
	}
	return m, tea.Batch(cmds...)
}

// plant submits the form to the controller.
func (m Model) plant() (tea.Model, tea.Cmd) {
	now := m.now()
	err := m.controller.StartPlantingText(m.selectedPlant(), m.areaInput.Value(), now)
	if err != nil {
		m.modalOpen = true
		m.modalReason = errors.ReasonOf(err)
		m.logger.Debug("showing invalid input modal",
			"reason", m.modalReason,
			"severity", errors.GetSeverity(err).String())
		return m, nil
	}
	m.lastNow = now
	m.snap = m.controller.Snapshot()
	m.areaInput.Blur()
	return m, nil
}

// plantAgain discards the harvested session and restores the form with the
// previous choices.
func (m Model) plantAgain() (tea.Model, tea.Cmd) {
	m.controller.Reset()
	m.snap = m.controller.Snapshot()
	m.setFocus(focusPlant)
	return m, nil
}

func (m Model) selectedPlant() string {
	if m.selectIndex < 0 || m.selectIndex >= len(m.options) {
		return catalog.NoneSelected
	}
	return m.options[m.selectIndex]
}

func (m *Model) setFocus(f focusField) {
	m.focus = f
	if f == focusArea {
		m.areaInput.Focus()
	} else {
		m.areaInput.Blur()
	}
}

// nextPhaseIn returns the next phase and the time left until it starts.
// ok is false when no phase change is pending.
func (m Model) nextPhaseIn() (next growth.Phase, remaining time.Duration, ok bool) {
	if m.snap.State != growth.StateGrowing {
		return 0, 0, false
	}
	next, at, ok := m.controller.NextPhaseAt()
	if !ok {
		return 0, 0, false
	}
	return next, at.Sub(m.lastNow), true
}
