package wizard

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/imamik/onboard/internal/config"
	"github.com/imamik/onboard/internal/identity"
	"github.com/imamik/onboard/internal/onboarding"
)

// runIdentityGroup prompts for the identity provider.
func runIdentityGroup(ctx context.Context, result *config.Answers) error {
	result.Provider = identity.GitHub // default

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Identity Provider").
				Description("Who should the project be registered to").
				Options(ProvidersToOptions()...).
				Value(&result.Provider),
		).Title("Authentication"),
	).RunWithContext(ctx)
}

// runProjectGroup prompts for the project details.
func runProjectGroup(ctx context.Context, result *config.Answers) error {
	p := &result.Project
	p.ProjectType = string(onboarding.ProjectWebApp)
	p.Language = string(onboarding.LangTypeScript)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project Name").
				Description("Lowercase letters, numbers, and hyphens").
				Placeholder("my-awesome-project").
				Value(&p.Name).
				Validate(fieldValidator(onboarding.FieldName)),
			huh.NewInput().
				Title("Display Name").
				Placeholder("My Awesome Project").
				Value(&p.DisplayName).
				Validate(fieldValidator(onboarding.FieldDisplayName)),
			huh.NewText().
				Title("Description").
				Description("At least 10 characters").
				Value(&p.Description).
				Validate(fieldValidator(onboarding.FieldDescription)),
		).Title("Project Details"),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Project Type").
				Options(ChoicesToOptions(onboarding.ProjectTypes)...).
				Value(&p.ProjectType),
			huh.NewSelect[string]().
				Title("Primary Language").
				Options(ChoicesToOptions(onboarding.Languages)...).
				Value(&p.Language),
		).Title("Stack"),
	).RunWithContext(ctx)
}

// runFrameworkGroup prompts for a framework of the chosen language.
func runFrameworkGroup(ctx context.Context, result *config.Answers) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Framework").
				Description("Optional").
				Options(FrameworkOptions(result.Project.Language)...).
				Value(&result.Project.Framework),
		).Title("Framework"),
	).RunWithContext(ctx)
}

// runTemplatesGroup prompts for the templates to apply.
func runTemplatesGroup(ctx context.Context, result *config.Answers) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Templates").
				Description("Infrastructure and repository starters").
				Options(TemplatesToOptions(onboarding.Templates)...).
				Value(&result.Templates).
				Validate(validateTemplates),
		).Title("Template Selection"),
	).RunWithContext(ctx)
}

// runConfigurationGroup prompts for environment, data store, budget and
// compliance.
func runConfigurationGroup(ctx context.Context, result *config.Answers) error {
	c := &result.Configuration
	c.Environment = string(onboarding.EnvDevelopment)
	c.DataStore = string(onboarding.StoreNone)
	var budget string

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Environment").
				Options(ChoicesToOptions(onboarding.Environments)...).
				Value(&c.Environment),
			huh.NewSelect[string]().
				Title("Data Store").
				Options(ChoicesToOptions(onboarding.DataStores)...).
				Value(&c.DataStore),
		).Title("Configuration"),
		huh.NewGroup(
			huh.NewInput().
				Title("Monthly Budget (USD)").
				Description("Leave empty or 0 for no limit").
				Placeholder("0").
				Value(&budget).
				Validate(validateBudget),
			huh.NewMultiSelect[string]().
				Title("Compliance Requirements").
				Options(ChoicesToOptions(onboarding.ComplianceOptions)...).
				Value(&c.Compliance),
		).Title("Governance"),
	).RunWithContext(ctx)

	if err != nil {
		return err
	}

	c.Budget = parseBudget(budget)
	return nil
}

// runTagsGroup prompts for the resource tags.
func runTagsGroup(ctx context.Context, result *config.Answers) error {
	values := make([]string, len(onboarding.TagKeys))
	fields := make([]huh.Field, len(onboarding.TagKeys))
	for i, key := range onboarding.TagKeys {
		fields[i] = huh.NewInput().Title(key).Description("Optional").Value(&values[i])
	}

	if err := huh.NewForm(huh.NewGroup(fields...).Title("Resource Tags")).RunWithContext(ctx); err != nil {
		return err
	}

	result.Configuration.Tags = collectTags(onboarding.TagKeys, values)
	return nil
}

// fieldValidator adapts the Project Details field rules to huh.
func fieldValidator(field string) func(string) error {
	return func(s string) error {
		if msg := onboarding.ValidateDetailsField(field, s); msg != "" {
			return fieldError(msg)
		}
		return nil
	}
}

type fieldError string

func (e fieldError) Error() string { return string(e) }

func validateTemplates(ids []string) error {
	if len(ids) == 0 {
		return errTemplatesRequired
	}
	return nil
}

func validateBudget(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return errBudgetInvalid
	}
	return nil
}

// parseBudget returns nil for an empty input.
func parseBudget(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		n = 0
	}
	return &n
}

// collectTags pairs keys with values, skipping empty values.
func collectTags(keys, values []string) map[string]string {
	tags := map[string]string{}
	for i, k := range keys {
		if i < len(values) {
			if v := strings.TrimSpace(values[i]); v != "" {
				tags[k] = v
			}
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}
