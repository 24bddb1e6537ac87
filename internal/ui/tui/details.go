package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/onboard/internal/onboarding"
	"github.com/imamik/onboard/internal/ui/style"
)

// Rows of the details form in focus order. The first three are text inputs.
var detailsRows = []string{
	onboarding.FieldName,
	onboarding.FieldDisplayName,
	onboarding.FieldDescription,
	onboarding.FieldProjectType,
	onboarding.FieldLanguage,
	onboarding.FieldFramework,
}

var detailsLabels = map[string]string{
	onboarding.FieldName:        "Project name",
	onboarding.FieldDisplayName: "Display name",
	onboarding.FieldDescription: "Description",
	onboarding.FieldProjectType: "Project type",
	onboarding.FieldLanguage:    "Language",
	onboarding.FieldFramework:   "Framework",
}

type detailsScreen struct {
	env    *env
	draft  onboarding.DetailsDraft
	inputs []*textinput.Model
	focus  int
}

func newDetailsScreen(e *env) *detailsScreen {
	cfg := e.store.State().Config
	name := newTextInput("my-awesome-project", cfg.Name, 64)
	display := newTextInput("My Awesome Project", cfg.DisplayName, 100)
	desc := newTextInput("What does this project do?", cfg.Description, 500)
	s := &detailsScreen{
		env:    e,
		draft:  onboarding.NewDetailsDraft(cfg),
		inputs: []*textinput.Model{&name, &display, &desc},
	}
	focusOnly(s.inputs, s.focus)
	return s
}

func (s *detailsScreen) Init() tea.Cmd {
	return nil
}

func (s *detailsScreen) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.focus < len(s.inputs) {
			cmd, _ := updateInput(s.inputs[s.focus], msg)
			return cmd
		}
		return nil
	}

	switch key.String() {
	case "tab", "down":
		s.moveFocus(1)
		return nil
	case "shift+tab", "up":
		s.moveFocus(-1)
		return nil
	}

	field := detailsRows[s.focus]
	if s.focus < len(s.inputs) {
		cmd, changed := updateInput(s.inputs[s.focus], msg)
		if changed {
			s.set(field, s.inputs[s.focus].Value())
		}
		return cmd
	}

	delta := 0
	switch key.String() {
	case "right", "l", " ", "enter":
		delta = 1
	case "left", "h":
		delta = -1
	}
	if delta != 0 {
		s.set(field, cycle(s.options(field), s.value(field), delta))
	}
	return nil
}

func (s *detailsScreen) moveFocus(delta int) {
	n := len(detailsRows)
	s.focus = ((s.focus+delta)%n + n) % n
	focusOnly(s.inputs, s.focus)
}

// set records a field change and pushes the whole draft upward.
func (s *detailsScreen) set(field, value string) {
	s.draft.Set(field, value)
	s.env.store.UpdateConfig(s.draft.Patch())
}

func (s *detailsScreen) options(field string) []string {
	switch field {
	case onboarding.FieldProjectType:
		return choiceValues(onboarding.ProjectTypes)
	case onboarding.FieldLanguage:
		return choiceValues(onboarding.Languages)
	case onboarding.FieldFramework:
		return append([]string{""}, onboarding.Frameworks[s.draft.Language]...)
	}
	return nil
}

func (s *detailsScreen) value(field string) string {
	switch field {
	case onboarding.FieldProjectType:
		return string(s.draft.ProjectType)
	case onboarding.FieldLanguage:
		return string(s.draft.Language)
	case onboarding.FieldFramework:
		return s.draft.Framework
	}
	return ""
}

func (s *detailsScreen) display(field string) string {
	v := s.value(field)
	switch field {
	case onboarding.FieldProjectType:
		if v == "" {
			return "select a project type"
		}
		return onboarding.ChoiceLabel(onboarding.ProjectTypes, v)
	case onboarding.FieldLanguage:
		if v == "" {
			return "select a language"
		}
		return onboarding.ChoiceLabel(onboarding.Languages, v)
	default:
		if v == "" {
			return "None"
		}
		return v
	}
}

func (s *detailsScreen) View(_ int) string {
	var b strings.Builder
	b.WriteString(style.Section.Render("  Project Details"))
	b.WriteString("\n\n")

	for i, field := range detailsRows {
		label := fmt.Sprintf("%-14s", detailsLabels[field])
		if i == s.focus {
			label = style.Active.Render(label)
		} else {
			label = style.Dim.Render(label)
		}

		var value string
		if i < len(s.inputs) {
			value = s.inputs[i].View()
		} else {
			value = "< " + s.display(field) + " >"
			if i == s.focus {
				value = style.Active.Render(value)
			}
		}
		fmt.Fprintf(&b, "  %s%s %s\n", cursorPrefix(i == s.focus), label, value)

		if msg, ok := s.draft.Errors[field]; ok {
			fmt.Fprintf(&b, "  %s%s\n", strings.Repeat(" ", 17), style.Failed.Render(msg))
		}
	}

	if s.draft.Valid() {
		fmt.Fprintf(&b, "\n  %s %s\n", style.Ready.Render(style.CheckMark), style.Ready.Render("Project details look good"))
	}
	return b.String()
}

func (s *detailsScreen) Help() string {
	return "tab: next field  |  left/right: change choice"
}
