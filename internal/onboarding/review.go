package onboarding

// Review field keys.
const (
	ReviewFieldProjectName = "projectName"
	ReviewFieldEnvironment = "environment"
	ReviewFieldTemplates   = "templates"
	ReviewFieldBudget      = "budget"
	ReviewFieldCompliance  = "compliance"
)

// BudgetWarningThreshold is the monthly budget above which Review warns.
const BudgetWarningThreshold = 1000

// Review validates the collected configuration before provisioning. The
// result is meant to replace any earlier results wholesale.
func Review(cfg ProjectConfig, templates []Template) []ValidationResult {
	results := []ValidationResult{}

	switch {
	case cfg.Name == "":
		results = append(results, ValidationResult{
			Field:   ReviewFieldProjectName,
			Message: "Project name is required",
			Type:    SeverityError,
		})
	case len(cfg.Name) < 3:
		results = append(results, ValidationResult{
			Field:   ReviewFieldProjectName,
			Message: "Project name should be at least 3 characters",
			Type:    SeverityError,
		})
	}

	if cfg.Environment == "" {
		results = append(results, ValidationResult{
			Field:   ReviewFieldEnvironment,
			Message: "Environment selection is required",
			Type:    SeverityError,
		})
	}

	if len(templates) == 0 {
		results = append(results, ValidationResult{
			Field:   ReviewFieldTemplates,
			Message: "At least one template must be selected",
			Type:    SeverityError,
		})
	}

	if cfg.Budget != nil && *cfg.Budget > BudgetWarningThreshold {
		results = append(results, ValidationResult{
			Field:   ReviewFieldBudget,
			Message: "High budget detected - ensure approval is obtained",
			Type:    SeverityWarning,
		})
	}

	if cfg.Environment == EnvProduction && len(cfg.Compliance) == 0 {
		results = append(results, ValidationResult{
			Field:   ReviewFieldCompliance,
			Message: "Production environments should have compliance requirements",
			Type:    SeverityWarning,
		})
	}

	return results
}

// SplitResults separates errors from warnings, preserving order.
func SplitResults(results []ValidationResult) (errs, warnings []ValidationResult) {
	for _, r := range results {
		if r.IsError() {
			errs = append(errs, r)
		} else {
			warnings = append(warnings, r)
		}
	}
	return errs, warnings
}
