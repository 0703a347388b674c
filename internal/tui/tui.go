package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Hansaeng20/Ping-Simulator/internal/sim"
)

// Run starts the TUI with the given session configuration.
func Run(config sim.Config) error {
	model := New(config)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	// Surface session errors (e.g. an invalid address) after teardown
	if m, ok := finalModel.(Model); ok {
		if m.state == StateError && m.err != nil {
			return m.err
		}
	}

	return nil
}
