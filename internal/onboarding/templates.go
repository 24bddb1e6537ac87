package onboarding

// TemplateFilter narrows the catalog by template type.
type TemplateFilter string

// Template filters.
const (
	FilterAll            TemplateFilter = "all"
	FilterInfrastructure TemplateFilter = "infrastructure"
	FilterRepository     TemplateFilter = "repository"
)

// TemplateFilters lists the filters in display order.
var TemplateFilters = []TemplateFilter{FilterAll, FilterInfrastructure, FilterRepository}

// Matches reports whether t passes the type filter.
func (f TemplateFilter) Matches(t Template) bool {
	return f == FilterAll || f == "" || string(t.Type) == string(f)
}

// RelevantTemplates returns the catalog entries shown for the filter.
//
// The relevance rules for project type and language only ever admit a
// template; nothing is excluded beyond the type filter.
func RelevantTemplates(catalog []Template, filter TemplateFilter, projectType ProjectType, language Language) []Template {
	out := make([]Template, 0, len(catalog))
	for _, t := range catalog {
		if !filter.Matches(t) {
			continue
		}
		if isRelevant(t, projectType, language) {
			out = append(out, t)
		}
	}
	return out
}

func isRelevant(t Template, projectType ProjectType, language Language) bool {
	if projectType == ProjectWebApp && t.ID == "repo-react-starter" {
		return true
	}
	if language == LangPython && t.ID == "repo-api-fastapi" {
		return true
	}
	if t.Type == TemplateInfrastructure {
		return true
	}
	return true
}

// IsSelected reports whether a template with id is in selected.
func IsSelected(selected []Template, id string) bool {
	for _, t := range selected {
		if t.ID == id {
			return true
		}
	}
	return false
}

// ToggleTemplate returns selected with t removed when it is present (by id),
// or appended when it is not. selected is not modified.
func ToggleTemplate(selected []Template, t Template) []Template {
	if IsSelected(selected, t.ID) {
		out := make([]Template, 0, len(selected))
		for _, s := range selected {
			if s.ID != t.ID {
				out = append(out, s)
			}
		}
		return out
	}
	out := make([]Template, 0, len(selected)+1)
	out = append(out, selected...)
	return append(out, t)
}

// EstimateMinutes sums the time estimate of every template.
func EstimateMinutes(templates []Template) int {
	total := 0
	for _, t := range templates {
		total += t.Minutes()
	}
	return total
}

// ResourcesOf flattens the resource lists of templates of the given type.
func ResourcesOf(templates []Template, typ TemplateType) []string {
	var out []string
	for _, t := range templates {
		if t.Type == typ {
			out = append(out, t.Resources...)
		}
	}
	return out
}
