package tui

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Iron-Ham/sprout/internal/growth"
	tea "github.com/charmbracelet/bubbletea"
)

// App wraps the Bubbletea program
type App struct {
	program    *tea.Program
	model      Model
	controller *growth.Controller
	altScreen  bool
}

// New creates a new TUI application
func New(ctrl *growth.Controller, opts Options, altScreen bool) *App {
	return &App{
		model:      NewModel(ctrl, opts),
		controller: ctrl,
		altScreen:  altScreen,
	}
}

// Run starts the TUI application and blocks until the user quits.
func (a *App) Run() error {
	var programOpts []tea.ProgramOption
	if a.altScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	a.program = tea.NewProgram(a.model, programOpts...)

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		<-sigChan
		// Send quit message to the TUI
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	_, err := a.program.Run()

	// Clean up signal handler
	signal.Stop(sigChan)

	if a.controller.State() == growth.StateGrowing {
		a.model.logger.Info("quit while growing", "elapsed_days", a.controller.Snapshot().ElapsedDays)
	}
	return err
}
