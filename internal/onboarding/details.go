package onboarding

import (
	"regexp"

	"github.com/imamik/onboard/internal/util/ptr"
)

// Project Details field keys.
const (
	FieldName        = "name"
	FieldDisplayName = "displayName"
	FieldDescription = "description"
	FieldProjectType = "projectType"
	FieldLanguage    = "language"
	FieldFramework   = "framework"
)

// Field validation messages of the Project Details step.
const (
	MsgNameRequired        = "Project name is required"
	MsgNameInvalid         = "Project name must be lowercase letters, numbers, and hyphens only"
	MsgNameTooShort        = "Project name must be at least 3 characters"
	MsgDisplayNameRequired = "Display name is required"
	MsgDescriptionRequired = "Description is required"
	MsgDescriptionTooShort = "Description must be at least 10 characters"
)

var projectNamePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidateDetailsField validates a single Project Details field. It returns
// the error message, or "" when the value is acceptable. Fields without rules
// always validate.
func ValidateDetailsField(field, value string) string {
	switch field {
	case FieldName:
		switch {
		case value == "":
			return MsgNameRequired
		case !projectNamePattern.MatchString(value):
			return MsgNameInvalid
		case len(value) < 3:
			return MsgNameTooShort
		}
	case FieldDisplayName:
		if value == "" {
			return MsgDisplayNameRequired
		}
	case FieldDescription:
		switch {
		case value == "":
			return MsgDescriptionRequired
		case len(value) < 10:
			return MsgDescriptionTooShort
		}
	}
	return ""
}

// DetailsDraft is the screen-local form state of the Project Details step.
// Errors only holds fields that have been edited and currently fail.
type DetailsDraft struct {
	Name        string
	DisplayName string
	Description string
	ProjectType ProjectType
	Language    Language
	Framework   string
	Errors      map[string]string
}

// NewDetailsDraft seeds a draft from the shared config.
func NewDetailsDraft(cfg ProjectConfig) DetailsDraft {
	return DetailsDraft{
		Name:        cfg.Name,
		DisplayName: cfg.DisplayName,
		Description: cfg.Description,
		ProjectType: cfg.ProjectType,
		Language:    cfg.Language,
		Framework:   cfg.Framework,
		Errors:      map[string]string{},
	}
}

// Set assigns a field and revalidates it. Choosing a language clears the
// framework, since framework choices depend on it.
func (d *DetailsDraft) Set(field, value string) {
	if d.Errors == nil {
		d.Errors = map[string]string{}
	}
	switch field {
	case FieldName:
		d.Name = value
	case FieldDisplayName:
		d.DisplayName = value
	case FieldDescription:
		d.Description = value
	case FieldProjectType:
		d.ProjectType = ProjectType(value)
	case FieldLanguage:
		d.Language = Language(value)
		d.Framework = ""
	case FieldFramework:
		d.Framework = value
	}
	if msg := ValidateDetailsField(field, value); msg != "" {
		d.Errors[field] = msg
	} else {
		delete(d.Errors, field)
	}
}

// Valid reports whether the draft has no outstanding errors and all required
// fields are populated.
func (d DetailsDraft) Valid() bool {
	return len(d.Errors) == 0 &&
		d.Name != "" && d.DisplayName != "" && d.Description != "" &&
		d.ProjectType != "" && d.Language != ""
}

// Patch returns the draft as a config patch carrying every draft field.
func (d DetailsDraft) Patch() ConfigPatch {
	return ConfigPatch{
		Name:        ptr.String(d.Name),
		DisplayName: ptr.String(d.DisplayName),
		Description: ptr.String(d.Description),
		ProjectType: ptr.To(d.ProjectType),
		Language:    ptr.To(d.Language),
		Framework:   ptr.String(d.Framework),
	}
}
