package headless

import (
	"sort"

	"github.com/imamik/onboard/internal/config"
	"github.com/imamik/onboard/internal/onboarding"
)

// Messages for required Project Details selections. The form reports these
// by keeping its next control disabled; headless runs spell them out.
const (
	MsgProjectTypeRequired = "Project type is required"
	MsgLanguageRequired    = "Language is required"
)

// CheckResult is the outcome of validating answers without running them.
type CheckResult struct {
	// Fields holds Project Details field errors keyed by field.
	Fields map[string]string
	// Review holds the Review step findings.
	Review []onboarding.ValidationResult
}

// OK reports whether nothing would block a run.
func (r CheckResult) OK() bool {
	if len(r.Fields) > 0 {
		return false
	}
	for _, f := range r.Review {
		if f.IsError() {
			return false
		}
	}
	return true
}

// FieldNames returns the failing field names, sorted.
func (r CheckResult) FieldNames() []string {
	names := make([]string, 0, len(r.Fields))
	for f := range r.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return names
}

// Check applies the Project Details and Review rules to answers. Unknown
// template ids are reported as an error.
func Check(answers *config.Answers) (CheckResult, error) {
	draft := answers.DetailsDraft()
	fields := detailErrors(draft)

	templates, err := answers.SelectedTemplates()
	if err != nil {
		return CheckResult{}, err
	}
	cfg := answers.ConfigPatch().Apply(draft.Patch().Apply(onboarding.ProjectConfig{}))
	return CheckResult{
		Fields: fields,
		Review: onboarding.Review(cfg, templates),
	}, nil
}

// PrintCheck writes a check result with the printer.
func (p *Printer) PrintCheck(r CheckResult) {
	for _, f := range r.FieldNames() {
		p.fail(f + ": " + r.Fields[f])
	}
	p.Findings(r.Review)
}

func detailErrors(d onboarding.DetailsDraft) map[string]string {
	out := make(map[string]string, len(d.Errors)+2)
	for f, msg := range d.Errors {
		out[f] = msg
	}
	if d.ProjectType == "" {
		out[onboarding.FieldProjectType] = MsgProjectTypeRequired
	}
	if d.Language == "" {
		out[onboarding.FieldLanguage] = MsgLanguageRequired
	}
	return out
}
