package onboarding

// ConfigPatch is a partial ProjectConfig. A nil field is absent from the patch
// and leaves the current value untouched. For Tags and Compliance a non-nil
// value, even an empty one, replaces the current value.
type ConfigPatch struct {
	Name        *string
	DisplayName *string
	Description *string
	ProjectType *ProjectType
	Environment *Environment
	Language    *Language
	Framework   *string
	DataStore   *DataStore
	Owner       *string
	Team        *string
	Tags        map[string]string
	Budget      *int
	Compliance  []string
}

// Apply shallow-merges the patch over c and returns the result. c is not
// modified.
func (p ConfigPatch) Apply(c ProjectConfig) ProjectConfig {
	out := c.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.DisplayName != nil {
		out.DisplayName = *p.DisplayName
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.ProjectType != nil {
		out.ProjectType = *p.ProjectType
	}
	if p.Environment != nil {
		out.Environment = *p.Environment
	}
	if p.Language != nil {
		out.Language = *p.Language
	}
	if p.Framework != nil {
		out.Framework = *p.Framework
	}
	if p.DataStore != nil {
		out.DataStore = *p.DataStore
	}
	if p.Owner != nil {
		out.Owner = *p.Owner
	}
	if p.Team != nil {
		out.Team = *p.Team
	}
	if p.Tags != nil {
		out.Tags = make(map[string]string, len(p.Tags))
		for k, v := range p.Tags {
			out.Tags[k] = v
		}
	}
	if p.Budget != nil {
		b := *p.Budget
		out.Budget = &b
	}
	if p.Compliance != nil {
		out.Compliance = append([]string{}, p.Compliance...)
	}
	return out
}
