package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/imamik/onboard/internal/onboarding"
	"github.com/imamik/onboard/internal/ui/style"
)

// ErrUnknownFilter is returned for a template type outside the known filters.
var ErrUnknownFilter = errors.New("unknown template type")

// Catalog prints the templates matching filter.
func Catalog(filter onboarding.TemplateFilter) error {
	if !validFilter(filter) {
		return fmt.Errorf("%w %q (want one of %s)", ErrUnknownFilter, filter, filterNames())
	}

	templates := onboarding.RelevantTemplates(onboarding.Templates, filter, "", "")

	fmt.Println()
	fmt.Println(style.Title.Render("Template Catalog"))
	fmt.Println()
	for _, t := range templates {
		fmt.Printf("%s  %s\n", style.Section.Render(t.Name), style.Dim.Render("("+t.ID+")"))
		fmt.Printf("  %s\n", t.Description)
		fmt.Printf("  Type:       %s\n", t.Type)
		fmt.Printf("  Complexity: %s\n", t.Complexity)
		fmt.Printf("  Estimated:  %s\n", t.EstimatedTime)
		if len(t.Technologies) > 0 {
			fmt.Printf("  Stack:      %s\n", strings.Join(t.Technologies, ", "))
		}
		if len(t.Resources) > 0 {
			fmt.Printf("  Resources:  %s\n", strings.Join(t.Resources, ", "))
		}
		fmt.Println()
	}
	fmt.Printf("%d templates, %d minutes if all selected\n", len(templates), onboarding.EstimateMinutes(templates))
	return nil
}

func validFilter(f onboarding.TemplateFilter) bool {
	for _, known := range onboarding.TemplateFilters {
		if f == known {
			return true
		}
	}
	return false
}

func filterNames() string {
	names := make([]string, len(onboarding.TemplateFilters))
	for i, f := range onboarding.TemplateFilters {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
