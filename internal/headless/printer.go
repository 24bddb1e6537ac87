package headless

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/imamik/onboard/internal/onboarding"
	"github.com/imamik/onboard/internal/provisioning"
	"github.com/imamik/onboard/internal/ui/style"
)

// Printer writes headless progress as plain lines styled with lipgloss.
type Printer struct {
	out  io.Writer
	seen map[string]onboarding.StepStatus
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, seen: map[string]onboarding.StepStatus{}}
}

// Step prints the step heading.
func (p *Printer) Step(step onboarding.Step) {
	fmt.Fprintf(p.out, "\n%s %s\n",
		style.Section.Render(step.Title()),
		style.Dim.Render(fmt.Sprintf("(Step %d of %d)", int(step)+1, onboarding.TotalSteps)))
}

// Info prints a success line.
func (p *Printer) Info(msg string) {
	fmt.Fprintf(p.out, "  %s %s\n", style.Ready.Render(style.CheckMark), msg)
}

// FieldErrors prints every Project Details problem of d in field order.
func (p *Printer) FieldErrors(d onboarding.DetailsDraft) {
	errs := detailErrors(d)
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		p.fail(f + ": " + errs[f])
	}
}

// Project prints the project summary.
func (p *Printer) Project(cfg onboarding.ProjectConfig) {
	p.kv("Name", cfg.Name)
	p.kv("Display name", cfg.DisplayName)
	p.kv("Type", onboarding.ChoiceLabel(onboarding.ProjectTypes, string(cfg.ProjectType)))
	p.kv("Language", onboarding.ChoiceLabel(onboarding.Languages, string(cfg.Language)))
	if cfg.Framework != "" {
		p.kv("Framework", cfg.Framework)
	}
}

// Templates prints the selection and its estimated time.
func (p *Printer) Templates(templates []onboarding.Template) {
	for _, t := range templates {
		fmt.Fprintf(p.out, "  %s %s %s\n", style.Ready.Render(style.Selected), t.Name, style.Dim.Render("("+t.EstimatedTime+")"))
	}
	p.kv("Estimated time", fmt.Sprintf("%d minutes", onboarding.EstimateMinutes(templates)))
}

// Configuration prints the configuration summary.
func (p *Printer) Configuration(cfg onboarding.ProjectConfig) {
	p.kv("Environment", onboarding.ChoiceLabel(onboarding.Environments, string(cfg.Environment)))
	p.kv("Data store", onboarding.ChoiceLabel(onboarding.DataStores, string(cfg.DataStore)))
	p.kv("Budget", formatBudget(cfg.Budget))
	if len(cfg.Compliance) > 0 {
		labels := make([]string, len(cfg.Compliance))
		for i, c := range cfg.Compliance {
			labels[i] = onboarding.ChoiceLabel(onboarding.ComplianceOptions, c)
		}
		p.kv("Compliance", strings.Join(labels, ", "))
	}
	for _, k := range onboarding.TagKeys {
		if v, ok := cfg.Tags[k]; ok {
			p.kv("Tag "+k, v)
		}
	}
}

// Findings prints review errors then warnings.
func (p *Printer) Findings(results []onboarding.ValidationResult) {
	errs, warnings := onboarding.SplitResults(results)
	if len(results) == 0 {
		p.Info("All checks passed")
		return
	}
	for _, r := range errs {
		p.fail(r.Message)
	}
	for _, r := range warnings {
		fmt.Fprintf(p.out, "  %s %s\n", style.Warning.Render(style.WarnMark), r.Message)
	}
}

// Provisioning prints steps whose status changed since the last call.
func (p *Printer) Provisioning(steps []onboarding.ProvisioningStep) {
	for _, s := range steps {
		if p.seen[s.ID] == s.Status {
			continue
		}
		p.seen[s.ID] = s.Status
		switch s.Status {
		case onboarding.StatusRunning:
			fmt.Fprintf(p.out, "  %s %s %s\n", style.Active.Render(style.Spinner), s.Name, style.Dim.Render(s.Message))
		case onboarding.StatusCompleted:
			fmt.Fprintf(p.out, "  %s %s %s\n", style.Ready.Render(style.CheckMark), s.Name, style.Dim.Render(s.Details))
			fmt.Fprintf(p.out, "  %s %d%%\n", style.ProgressBar(float64(provisioning.Percent(steps))/100, 30), provisioning.Percent(steps))
		case onboarding.StatusFailed:
			fmt.Fprintf(p.out, "  %s %s\n", style.Failed.Render(style.CrossMark), s.Name)
		}
	}
}

// Completion prints the completion payload.
func (p *Printer) Completion(d onboarding.CompletionData) {
	p.kv("Repository", d.RepositoryURL)
	p.list("Infrastructure", d.InfrastructureURLs)
	p.list("Access", d.AccessDetails)
	fmt.Fprintf(p.out, "  %s\n", style.Subtitle.Render("Next steps"))
	for i, s := range d.NextSteps {
		fmt.Fprintf(p.out, "    %d. %s\n", i+1, s)
	}
}

func (p *Printer) fail(msg string) {
	fmt.Fprintf(p.out, "  %s %s\n", style.Failed.Render(style.CrossMark), msg)
}

func (p *Printer) kv(key, value string) {
	fmt.Fprintf(p.out, "  %s %s\n", style.Dim.Render(key+":"), value)
}

func (p *Printer) list(title string, items []string) {
	fmt.Fprintf(p.out, "  %s\n", style.Subtitle.Render(title))
	for _, it := range items {
		fmt.Fprintf(p.out, "    - %s\n", it)
	}
}

func formatBudget(b *int) string {
	if b == nil || *b == 0 {
		return "No limit"
	}
	return fmt.Sprintf("$%d/month", *b)
}
