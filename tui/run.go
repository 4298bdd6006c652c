package tui

import (
	"fmt"

	"github.com/SBDJUK/dsesh/session"
	tea "github.com/charmbracelet/bubbletea"
)

// Pick shows the session picker and returns the chosen session, or nil if the
// user quit without choosing.
func Pick(reg *session.Registry) (*session.Session, error) {
	p := tea.NewProgram(newModel(reg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("error running picker: %w", err)
	}

	m, ok := final.(model)
	if !ok {
		return nil, nil
	}
	return m.selected, nil
}
