package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/onboard/internal/onboarding"
	"github.com/imamik/onboard/internal/ui/style"
)

// Row layout of the configuration form.
const (
	rowEnvironment = iota
	rowDataStore
	rowBudget
	rowComplianceFirst
)

var (
	rowTagFirst    = rowComplianceFirst + len(onboarding.ComplianceOptions)
	configRowCount = rowTagFirst + len(onboarding.TagKeys)
)

type configurationScreen struct {
	env    *env
	draft  onboarding.ConfigDraft
	budget textinput.Model
	tags   []textinput.Model
	focus  int
}

func newConfigurationScreen(e *env) *configurationScreen {
	cfg := e.store.State().Config
	draft := onboarding.NewConfigDraft(cfg)

	budget := ""
	if cfg.Budget != nil && *cfg.Budget > 0 {
		budget = strconv.Itoa(*cfg.Budget)
	}
	s := &configurationScreen{
		env:    e,
		draft:  draft,
		budget: newTextInput("0 (no limit)", budget, 9),
	}
	for _, k := range onboarding.TagKeys {
		s.tags = append(s.tags, newTextInput(k, draft.Tags[k], 64))
	}
	s.refocus()
	return s
}

func (s *configurationScreen) Init() tea.Cmd {
	return nil
}

func (s *configurationScreen) inputs() []*textinput.Model {
	out := make([]*textinput.Model, 0, 1+len(s.tags))
	out = append(out, &s.budget)
	for i := range s.tags {
		out = append(out, &s.tags[i])
	}
	return out
}

// inputIndex maps a row to its position in inputs, or -1.
func inputIndex(row int) int {
	switch {
	case row == rowBudget:
		return 0
	case row >= rowTagFirst:
		return 1 + row - rowTagFirst
	}
	return -1
}

func (s *configurationScreen) refocus() {
	focusOnly(s.inputs(), inputIndex(s.focus))
}

func (s *configurationScreen) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if idx := inputIndex(s.focus); idx >= 0 {
			cmd, _ := updateInput(s.inputs()[idx], msg)
			return cmd
		}
		return nil
	}

	switch key.String() {
	case "tab", "down":
		s.focus = (s.focus + 1) % configRowCount
		s.refocus()
		return nil
	case "shift+tab", "up":
		s.focus = (s.focus - 1 + configRowCount) % configRowCount
		s.refocus()
		return nil
	}

	if idx := inputIndex(s.focus); idx >= 0 {
		ti := s.inputs()[idx]
		cmd, changed := updateInput(ti, msg)
		if changed {
			if s.focus == rowBudget {
				s.draft.SetBudget(ti.Value())
			} else {
				s.draft.SetTag(onboarding.TagKeys[s.focus-rowTagFirst], ti.Value())
			}
			s.push()
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
	if delta == 0 {
		return nil
	}

	switch {
	case s.focus == rowEnvironment:
		s.draft.Environment = onboarding.Environment(cycle(choiceValues(onboarding.Environments), string(s.draft.Environment), delta))
	case s.focus == rowDataStore:
		s.draft.DataStore = onboarding.DataStore(cycle(choiceValues(onboarding.DataStores), string(s.draft.DataStore), delta))
	default:
		s.draft.ToggleCompliance(onboarding.ComplianceOptions[s.focus-rowComplianceFirst].Value)
	}
	s.push()
	return nil
}

func (s *configurationScreen) push() {
	s.env.store.UpdateConfig(s.draft.Patch())
}

func (s *configurationScreen) View(_ int) string {
	var b strings.Builder
	b.WriteString(style.Section.Render("  Configuration"))
	b.WriteString("\n\n")

	s.choiceRow(&b, rowEnvironment, "Environment", onboarding.Environments, string(s.draft.Environment))
	s.choiceRow(&b, rowDataStore, "Data store", onboarding.DataStores, string(s.draft.DataStore))
	fmt.Fprintf(&b, "  %s%s %s %s\n", cursorPrefix(s.focus == rowBudget), s.label(rowBudget, fmt.Sprintf("%-14s", "Budget ($/mo)")),
		s.budget.View(), style.Dim.Render(formatBudget(&s.draft.Budget)))

	b.WriteString(style.Subtitle.Render("\n  Compliance"))
	b.WriteString("\n")
	for i, c := range onboarding.ComplianceOptions {
		row := rowComplianceFirst + i
		fmt.Fprintf(&b, "  %s%s %s %s\n", cursorPrefix(s.focus == row), checkbox(s.draft.HasCompliance(c.Value)),
			s.label(row, c.Label), style.Dim.Render(c.Description))
	}

	b.WriteString(style.Subtitle.Render("\n  Resource tags"))
	b.WriteString("\n")
	for i, k := range onboarding.TagKeys {
		row := rowTagFirst + i
		fmt.Fprintf(&b, "  %s%s %s\n", cursorPrefix(s.focus == row), s.label(row, fmt.Sprintf("%-14s", k)), s.tags[i].View())
	}

	if s.draft.Environment == onboarding.EnvProduction && len(s.draft.Compliance) == 0 {
		fmt.Fprintf(&b, "\n  %s %s\n", style.Warning.Render(style.WarnMark),
			style.Warning.Render("Production environments should have compliance requirements"))
	}
	return b.String()
}

func (s *configurationScreen) choiceRow(b *strings.Builder, row int, label string, choices []onboarding.Choice, value string) {
	display := "select"
	desc := ""
	for _, c := range choices {
		if c.Value == value {
			display, desc = c.Label, c.Description
		}
	}
	v := "< " + display + " >"
	if s.focus == row {
		v = style.Active.Render(v)
	}
	fmt.Fprintf(b, "  %s%s %s %s\n", cursorPrefix(s.focus == row), s.label(row, fmt.Sprintf("%-14s", label)), v, style.Dim.Render(desc))
}

func (s *configurationScreen) label(row int, text string) string {
	if s.focus == row {
		return style.Active.Render(text)
	}
	return style.Dim.Render(text)
}

func (s *configurationScreen) Help() string {
	return "tab: next field  |  left/right: change  |  space: toggle"
}
