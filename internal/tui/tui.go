package tui

import (
	"wishlist-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive TUI on top of the given store.
func Run(s *store.Store) error {
	applyColorProfilePreference()
	applyThemePreference()

	p := tea.NewProgram(newAppModel(s), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
