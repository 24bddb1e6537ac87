package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/onboard/internal/onboarding"
	"github.com/imamik/onboard/internal/ui/style"
)

var filterLabels = map[onboarding.TemplateFilter]string{
	onboarding.FilterAll:            "All",
	onboarding.FilterInfrastructure: "Infrastructure",
	onboarding.FilterRepository:     "Repository",
}

type templatesScreen struct {
	env      *env
	cfg      onboarding.ProjectConfig
	selected []onboarding.Template
	filter   onboarding.TemplateFilter
	cursor   int
}

func newTemplatesScreen(e *env) *templatesScreen {
	st := e.store.State()
	return &templatesScreen{
		env:      e,
		cfg:      st.Config,
		selected: st.SelectedTemplates,
		filter:   onboarding.FilterAll,
	}
}

func (s *templatesScreen) Init() tea.Cmd {
	return nil
}

func (s *templatesScreen) visible() []onboarding.Template {
	return onboarding.RelevantTemplates(onboarding.Templates, s.filter, s.cfg.ProjectType, s.cfg.Language)
}

func (s *templatesScreen) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	visible := s.visible()
	switch key.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(visible)-1 {
			s.cursor++
		}
	case "tab", "right", "f":
		s.setFilter(1)
	case "shift+tab", "left":
		s.setFilter(-1)
	case " ", "enter":
		if s.cursor < len(visible) {
			s.selected = onboarding.ToggleTemplate(s.selected, visible[s.cursor])
			s.env.store.UpdateTemplates(s.selected)
		}
	}
	return nil
}

func (s *templatesScreen) setFilter(delta int) {
	values := make([]string, len(onboarding.TemplateFilters))
	for i, f := range onboarding.TemplateFilters {
		values[i] = string(f)
	}
	s.filter = onboarding.TemplateFilter(cycle(values, string(s.filter), delta))
	s.cursor = 0
}

func (s *templatesScreen) View(_ int) string {
	var b strings.Builder
	b.WriteString(style.Section.Render("  Template Selection"))
	b.WriteString("\n  ")

	for _, f := range onboarding.TemplateFilters {
		label := " " + filterLabels[f] + " "
		if f == s.filter {
			b.WriteString(style.Active.Render("[" + label + "]"))
		} else {
			b.WriteString(style.Dim.Render(" " + label + " "))
		}
	}
	b.WriteString("\n\n")

	for i, t := range s.visible() {
		on := onboarding.IsSelected(s.selected, t.ID)
		name := t.Name
		if i == s.cursor {
			name = style.Active.Render(name)
		}
		fmt.Fprintf(&b, "  %s%s %s %s\n", cursorPrefix(i == s.cursor), checkbox(on), name,
			style.Dim.Render(fmt.Sprintf("(%s, %s, %s)", t.Type, t.Complexity, t.EstimatedTime)))
		fmt.Fprintf(&b, "        %s\n", style.Dim.Render(t.Description))
		if i == s.cursor && len(t.Technologies) > 0 {
			fmt.Fprintf(&b, "        %s\n", style.Subtitle.Render(strings.Join(t.Technologies, ", ")))
		}
	}

	total := onboarding.EstimateMinutes(s.selected)
	fmt.Fprintf(&b, "\n  %s\n", style.Subtitle.Render(
		fmt.Sprintf("%d selected  |  estimated time: %d minutes", len(s.selected), total)))
	return b.String()
}

func (s *templatesScreen) Help() string {
	return "space: toggle  |  tab: filter"
}
