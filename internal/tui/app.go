package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hallward/usher/internal/booking"
)

// App wraps the Bubbletea program
type App struct {
	model Model
}

// New creates a new picker application over the reservation service.
func New(svc booking.Service) *App {
	return &App{model: NewModel(svc)}
}

// Run starts the picker and blocks until the user quits.
func (a *App) Run() error {
	program := tea.NewProgram(a.model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
