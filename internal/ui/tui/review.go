package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/onboard/internal/onboarding"
	"github.com/imamik/onboard/internal/ui/style"
)

// reviewScreen is read-only. Its inputs cannot change while it is mounted,
// so the findings are computed once per mount.
type reviewScreen struct {
	env     *env
	state   onboarding.State
	results []onboarding.ValidationResult
}

func newReviewScreen(e *env) *reviewScreen {
	return &reviewScreen{env: e}
}

func (s *reviewScreen) Init() tea.Cmd {
	st := s.env.store.State()
	s.results = onboarding.Review(st.Config, st.SelectedTemplates)
	s.env.store.UpdateValidationResults(s.results)
	if s.env.deps.Review != nil {
		s.env.deps.Review.ObserveReview(s.results)
	}
	s.state = s.env.store.State()
	return nil
}

func (s *reviewScreen) Update(tea.Msg) tea.Cmd {
	return nil
}

func (s *reviewScreen) View(_ int) string {
	var b strings.Builder
	st := s.state
	cfg := st.Config

	renderFindings(&b, s.results)

	section(&b, "Owner")
	if st.User != nil {
		kv(&b, "Name", st.User.Name)
		kv(&b, "Email", st.User.Email)
		kv(&b, "Role", st.User.Role)
		kv(&b, "Team", st.User.Team)
	}

	section(&b, "Project")
	kv(&b, "Name", cfg.Name)
	kv(&b, "Display name", cfg.DisplayName)
	kv(&b, "Description", cfg.Description)
	kv(&b, "Type", onboarding.ChoiceLabel(onboarding.ProjectTypes, string(cfg.ProjectType)))
	lang := onboarding.ChoiceLabel(onboarding.Languages, string(cfg.Language))
	if cfg.Framework != "" {
		lang += " / " + cfg.Framework
	}
	kv(&b, "Language", lang)

	section(&b, "Templates")
	for _, t := range st.SelectedTemplates {
		fmt.Fprintf(&b, "    %s %s %s\n", style.Ready.Render(style.Selected), t.Name, style.Dim.Render(t.EstimatedTime))
	}

	section(&b, "Configuration")
	kv(&b, "Environment", onboarding.ChoiceLabel(onboarding.Environments, string(cfg.Environment)))
	kv(&b, "Data store", onboarding.ChoiceLabel(onboarding.DataStores, string(cfg.DataStore)))
	kv(&b, "Budget", formatBudget(cfg.Budget))
	if len(cfg.Compliance) > 0 {
		labels := make([]string, len(cfg.Compliance))
		for i, c := range cfg.Compliance {
			labels[i] = onboarding.ChoiceLabel(onboarding.ComplianceOptions, c)
		}
		kv(&b, "Compliance", strings.Join(labels, ", "))
	}
	for _, k := range onboarding.TagKeys {
		if v, ok := cfg.Tags[k]; ok {
			kv(&b, k, v)
		}
	}

	section(&b, "Resources to be created")
	for _, typ := range []onboarding.TemplateType{onboarding.TemplateInfrastructure, onboarding.TemplateRepository} {
		res := onboarding.ResourcesOf(st.SelectedTemplates, typ)
		if len(res) == 0 {
			continue
		}
		kv(&b, string(typ), strings.Join(res, ", "))
	}
	kv(&b, "Estimated time", fmt.Sprintf("%d minutes", onboarding.EstimateMinutes(st.SelectedTemplates)))

	return b.String()
}

func (s *reviewScreen) Help() string {
	return ""
}

func renderFindings(b *strings.Builder, results []onboarding.ValidationResult) {
	section(b, "Validation")
	if len(results) == 0 {
		fmt.Fprintf(b, "    %s %s\n", style.Ready.Render(style.CheckMark), style.Ready.Render("All checks passed"))
		return
	}
	errs, warnings := onboarding.SplitResults(results)
	for _, r := range errs {
		fmt.Fprintf(b, "    %s %s\n", style.Failed.Render(style.CrossMark), style.Failed.Render(r.Message))
	}
	for _, r := range warnings {
		fmt.Fprintf(b, "    %s %s\n", style.Warning.Render(style.WarnMark), style.Warning.Render(r.Message))
	}
}

func section(b *strings.Builder, title string) {
	b.WriteString(style.Section.Render("  " + title))
	b.WriteString("\n")
}

func kv(b *strings.Builder, key, value string) {
	fmt.Fprintf(b, "    %s %s\n", style.Dim.Render(fmt.Sprintf("%-16s", key+":")), value)
}
