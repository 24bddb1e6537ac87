package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/imamik/onboard/internal/onboarding"
)

func TestNewSessionID(t *testing.T) {
	t.Parallel()
	id := NewSessionID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, NewSessionID())
}

func TestWriteReport(t *testing.T) {
	t.Parallel()
	vpc, _ := onboarding.TemplateByID("infra-basic-vpc")
	user := onboarding.User{ID: "1", Name: "Alex Chen", Email: "alex.chen@company.com"}
	st := onboarding.State{
		User:              &user,
		Config:            onboarding.ProjectConfig{Name: "demo"},
		SelectedTemplates: []onboarding.Template{vpc},
		IsComplete:        true,
		Completion:        &onboarding.CompletionData{RepositoryURL: "https://github.com/company/my-awesome-project"},
	}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	r := NewReport("session-1", st, now)
	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, WriteReport(r, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# onboard session report")
	assert.Contains(t, string(content), "# Session: session-1")

	var decoded Report
	require.NoError(t, yaml.Unmarshal(content, &decoded))
	assert.Equal(t, "session-1", decoded.SessionID)
	assert.Equal(t, []string{"infra-basic-vpc"}, decoded.Templates)
	require.NotNil(t, decoded.Completion)
	assert.Equal(t, "https://github.com/company/my-awesome-project", decoded.Completion.RepositoryURL)
}
