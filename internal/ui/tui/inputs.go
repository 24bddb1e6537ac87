package tui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// newTextInput returns a text input with a steady cursor.
func newTextInput(placeholder, value string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = ""
	_ = ti.Cursor.SetMode(cursor.CursorStatic)
	ti.SetValue(value)
	return ti
}

// updateInput forwards msg to ti and reports whether its value changed.
func updateInput(ti *textinput.Model, msg tea.Msg) (tea.Cmd, bool) {
	before := ti.Value()
	var cmd tea.Cmd
	*ti, cmd = ti.Update(msg)
	return cmd, ti.Value() != before
}

// focusOnly focuses the input at idx and blurs the rest. Indexes outside
// inputs blur everything.
func focusOnly(inputs []*textinput.Model, idx int) {
	for i, ti := range inputs {
		if i == idx {
			ti.Focus()
		} else {
			ti.Blur()
		}
	}
}
