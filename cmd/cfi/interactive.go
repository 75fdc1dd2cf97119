package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"cfikit/cmd/cfi/ui"
)

// runInteractive launches the menu-driven TUI: validate a code, generate a
// code, or browse the taxonomy.
func runInteractive() error {
	tax, err := loadTaxonomy()
	if err != nil {
		return err
	}

	app := ui.NewApp(tax, ui.DefaultStyles(cfg.NoColor))
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("interactive interface failed: %w", err)
	}
	return nil
}
