package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/imamik/onboard/internal/onboarding"
)

// Report summarizes a finished headless session.
type Report struct {
	SessionID    string                        `yaml:"sessionId"`
	GeneratedAt  time.Time                     `yaml:"generatedAt"`
	User         *onboarding.User              `yaml:"user,omitempty"`
	Project      onboarding.ProjectConfig      `yaml:"project"`
	Templates    []string                      `yaml:"templates"`
	Validation   []onboarding.ValidationResult `yaml:"validation,omitempty"`
	Provisioning []onboarding.ProvisioningStep `yaml:"provisioning"`
	Completion   *onboarding.CompletionData    `yaml:"completion,omitempty"`
}

// NewSessionID returns a fresh random session id.
func NewSessionID() string {
	return uuid.NewString()
}

// NewReport builds a report from a state snapshot.
func NewReport(sessionID string, st onboarding.State, now time.Time) Report {
	ids := make([]string, len(st.SelectedTemplates))
	for i, t := range st.SelectedTemplates {
		ids[i] = t.ID
	}
	return Report{
		SessionID:    sessionID,
		GeneratedAt:  now.UTC(),
		User:         st.User,
		Project:      st.Config,
		Templates:    ids,
		Validation:   st.ValidationResults,
		Provisioning: st.Provisioning,
		Completion:   st.Completion,
	}
}

// WriteReport writes the report to a YAML file with a descriptive header.
func WriteReport(r Report, outputPath string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# onboard session report\n# Session: %s\n# Generated at: %s\n\n",
		r.SessionID, r.GeneratedAt.Format(time.RFC3339))
	sb.Write(data)

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
