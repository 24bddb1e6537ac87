package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// RunWizardTUI runs the interactive wizard until the user quits and returns
// the final model. Cancelling ctx stops the program.
func RunWizardTUI(ctx context.Context, deps Deps) (Model, error) {
	m := NewModel(deps)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	finalModel, err := p.Run()
	m.Close()
	if err != nil {
		return m, fmt.Errorf("TUI error: %w", err)
	}

	fm := finalModel.(Model)
	fm.Close()
	if fm.Err != nil {
		return fm, fm.Err
	}
	return fm, nil
}
