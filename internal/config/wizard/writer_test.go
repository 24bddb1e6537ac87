package wizard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/onboard/internal/config"
)

func sampleAnswers() *config.Answers {
	budget := 200
	return &config.Answers{
		Provider: "saml",
		Project: config.ProjectAnswers{
			Name:        "ledger",
			DisplayName: "Ledger",
			Description: "Double entry bookkeeping service",
			ProjectType: "api-service",
			Language:    "java",
			Framework:   "Quarkus",
		},
		Templates: []string{"infra-basic-vpc"},
		Configuration: config.ConfigurationAnswers{
			Environment: "staging",
			DataStore:   "postgres",
			Budget:      &budget,
			Compliance:  []string{"sox"},
			Tags:        map[string]string{"Team": "Finance"},
		},
	}
}

func TestWriteAnswers_RoundTrip(t *testing.T) {
	t.Parallel()
	outputPath := filepath.Join(t.TempDir(), "answers.yaml")

	require.NoError(t, WriteAnswers(sampleAnswers(), outputPath))

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# onboard answers")
	assert.Contains(t, string(content), "onboard apply -f "+outputPath)
	assert.Contains(t, string(content), "name: ledger")

	loaded, err := config.LoadAnswers(outputPath)
	require.NoError(t, err)
	assert.Equal(t, sampleAnswers(), loaded)
}

func TestWriteAnswers_FilePermissions(t *testing.T) {
	t.Parallel()
	outputPath := filepath.Join(t.TempDir(), "answers.yaml")

	require.NoError(t, WriteAnswers(sampleAnswers(), outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	assert.True(t, FileExists(outputPath))
	assert.False(t, FileExists(outputPath+".missing"))
}

func TestWriteAnswers_InvalidPath(t *testing.T) {
	t.Parallel()
	err := WriteAnswers(sampleAnswers(), "/nonexistent/dir/answers.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write file")
}
