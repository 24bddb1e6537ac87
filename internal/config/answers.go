package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/imamik/onboard/internal/identity"
	"github.com/imamik/onboard/internal/onboarding"
	"github.com/imamik/onboard/internal/util/ptr"
)

// Answers-file errors.
var (
	ErrAnswersEmpty    = errors.New("answers file is empty")
	ErrInvalidAnswers  = errors.New("answers file is invalid")
	ErrUnknownTemplate = errors.New("unknown template id")
)

// Answers is a complete set of wizard inputs for a non-interactive run.
// Missing values are allowed here; the wizard's own validation reports them.
type Answers struct {
	Provider      string               `yaml:"provider,omitempty" validate:"omitempty,provider"`
	Project       ProjectAnswers       `yaml:"project"`
	Templates     []string             `yaml:"templates,omitempty" validate:"dive,template"`
	Configuration ConfigurationAnswers `yaml:"configuration"`
}

// ProjectAnswers mirrors the Project Details step.
type ProjectAnswers struct {
	Name        string `yaml:"name,omitempty"`
	DisplayName string `yaml:"displayName,omitempty"`
	Description string `yaml:"description,omitempty"`
	ProjectType string `yaml:"projectType,omitempty" validate:"omitempty,oneof=web-app api-service mobile-app data-pipeline ml-model"`
	Language    string `yaml:"language,omitempty" validate:"omitempty,oneof=typescript python java go rust"`
	Framework   string `yaml:"framework,omitempty"`
}

// ConfigurationAnswers mirrors the Configuration step.
type ConfigurationAnswers struct {
	Environment string            `yaml:"environment,omitempty" validate:"omitempty,oneof=development staging production"`
	DataStore   string            `yaml:"dataStore,omitempty" validate:"omitempty,oneof=none postgres mongodb redis dynamodb"`
	Budget      *int              `yaml:"budget,omitempty" validate:"omitempty,min=0"`
	Compliance  []string          `yaml:"compliance,omitempty" validate:"dive,oneof=gdpr hipaa sox pci-dss"`
	Tags        map[string]string `yaml:"tags,omitempty" validate:"dive,keys,oneof=CostCenter Environment Project Team,endkeys"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("provider", validProvider)
	_ = v.RegisterValidation("template", validTemplate)
	v.RegisterStructValidation(validFramework, ProjectAnswers{})
	return v
}

func validProvider(fl validator.FieldLevel) bool {
	_, ok := identity.Lookup(fl.Field().String())
	return ok
}

func validTemplate(fl validator.FieldLevel) bool {
	_, ok := onboarding.TemplateByID(fl.Field().String())
	return ok
}

// validFramework rejects a framework that is not offered for the language.
func validFramework(sl validator.StructLevel) {
	p := sl.Current().Interface().(ProjectAnswers)
	if p.Framework == "" || p.Language == "" {
		return
	}
	for _, f := range onboarding.Frameworks[onboarding.Language(p.Language)] {
		if f == p.Framework {
			return
		}
	}
	sl.ReportError(p.Framework, "framework", "Framework", "framework", p.Language)
}

// LoadAnswers reads and validates an answers file.
func LoadAnswers(path string) (*Answers, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file: %w", err)
	}
	return ParseAnswers(data)
}

// ParseAnswers decodes and validates answers YAML.
func ParseAnswers(data []byte) (*Answers, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, ErrAnswersEmpty
	}

	var a Answers
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

// Validate checks enumerations and references. It does not require any
// field to be present.
func (a *Answers) Validate() error {
	err := validate.Struct(a)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidAnswers, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidAnswers, strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Answers.")
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s: %q must be one of [%s]", field, fe.Value(), fe.Param())
	case "min":
		return fmt.Sprintf("%s: must be at least %s", field, fe.Param())
	case "provider":
		return fmt.Sprintf("%s: unknown identity provider %q", field, fe.Value())
	case "template":
		return fmt.Sprintf("%s: %v %q", field, ErrUnknownTemplate, fe.Value())
	case "framework":
		return fmt.Sprintf("%s: %q is not offered for %s", field, fe.Value(), fe.Param())
	default:
		return fmt.Sprintf("%s: failed %s", field, fe.Tag())
	}
}

// ProviderID returns the configured provider, defaulting to GitHub.
func (a *Answers) ProviderID() string {
	if a.Provider == "" {
		return identity.GitHub
	}
	return a.Provider
}

// DetailsDraft returns the Project Details answers as a draft with every
// field validated, the same as typing each value into the form.
func (a *Answers) DetailsDraft() onboarding.DetailsDraft {
	d := onboarding.NewDetailsDraft(onboarding.ProjectConfig{})
	d.Set(onboarding.FieldName, a.Project.Name)
	d.Set(onboarding.FieldDisplayName, a.Project.DisplayName)
	d.Set(onboarding.FieldDescription, a.Project.Description)
	d.Set(onboarding.FieldProjectType, a.Project.ProjectType)
	d.Set(onboarding.FieldLanguage, a.Project.Language)
	d.Set(onboarding.FieldFramework, a.Project.Framework)
	return d
}

// SelectedTemplates resolves the template ids in order.
func (a *Answers) SelectedTemplates() ([]onboarding.Template, error) {
	out := make([]onboarding.Template, 0, len(a.Templates))
	for _, id := range a.Templates {
		t, ok := onboarding.TemplateByID(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTemplate, id)
		}
		out = append(out, t)
	}
	return out, nil
}

// ConfigPatch returns the Configuration answers as a config patch.
func (a *Answers) ConfigPatch() onboarding.ConfigPatch {
	c := a.Configuration
	p := onboarding.ConfigPatch{
		Environment: ptr.To(onboarding.Environment(c.Environment)),
		DataStore:   ptr.To(onboarding.DataStore(c.DataStore)),
		Compliance:  append([]string{}, c.Compliance...),
		Tags:        map[string]string{},
	}
	if c.Budget != nil {
		p.Budget = ptr.Int(*c.Budget)
	}
	for k, v := range c.Tags {
		if v != "" {
			p.Tags[k] = v
		}
	}
	return p
}
