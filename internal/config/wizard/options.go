package wizard

import (
	"github.com/charmbracelet/huh"

	"github.com/imamik/onboard/internal/identity"
	"github.com/imamik/onboard/internal/onboarding"
)

// ChoicesToOptions converts catalog choices to huh options.
func ChoicesToOptions(choices []onboarding.Choice) []huh.Option[string] {
	opts := make([]huh.Option[string], len(choices))
	for i, c := range choices {
		label := c.Label
		if c.Description != "" {
			label += " - " + c.Description
		}
		opts[i] = huh.NewOption(label, c.Value)
	}
	return opts
}

// ProvidersToOptions converts the identity providers to huh options.
func ProvidersToOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(identity.Providers))
	for i, p := range identity.Providers {
		opts[i] = huh.NewOption(p.Name+" - "+p.Description, p.ID)
	}
	return opts
}

// FrameworkOptions returns the frameworks offered for lang, led by a "none"
// entry.
func FrameworkOptions(lang string) []huh.Option[string] {
	fws := onboarding.Frameworks[onboarding.Language(lang)]
	opts := make([]huh.Option[string], 0, len(fws)+1)
	opts = append(opts, huh.NewOption("None", ""))
	for _, f := range fws {
		opts = append(opts, huh.NewOption(f, f))
	}
	return opts
}

// TemplatesToOptions converts catalog templates to huh options.
func TemplatesToOptions(templates []onboarding.Template) []huh.Option[string] {
	opts := make([]huh.Option[string], len(templates))
	for i, t := range templates {
		opts[i] = huh.NewOption(t.Name+" ("+string(t.Type)+", "+t.EstimatedTime+")", t.ID)
	}
	return opts
}
