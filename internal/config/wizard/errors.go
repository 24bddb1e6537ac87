package wizard

import "errors"

// Validation errors for the questionnaire.
var (
	errBudgetInvalid     = errors.New("budget must be a whole number of dollars (0 for no limit)")
	errTemplatesRequired = errors.New("select at least one template")
)
