package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateMinutes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want int
	}{
		{"15 minutes", 15},
		{" 5 minutes", 5},
		{"30", 30},
		{"about an hour", 0},
		{"", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Template{EstimatedTime: tt.in}.Minutes(), tt.in)
	}
}

func TestEstimateMinutes(t *testing.T) {
	t.Parallel()
	vpc, _ := TemplateByID("infra-basic-vpc")
	react, _ := TemplateByID("repo-react-starter")

	assert.Equal(t, 0, EstimateMinutes(nil))
	assert.Equal(t, 20, EstimateMinutes([]Template{vpc, react}))
	assert.Equal(t, 105, EstimateMinutes(Templates))
}

func TestToggleTemplate(t *testing.T) {
	t.Parallel()
	vpc, _ := TemplateByID("infra-basic-vpc")
	react, _ := TemplateByID("repo-react-starter")

	sel := ToggleTemplate(nil, vpc)
	sel = ToggleTemplate(sel, react)
	require.Len(t, sel, 2)

	sel = ToggleTemplate(sel, vpc)
	require.Len(t, sel, 1)
	assert.Equal(t, "repo-react-starter", sel[0].ID)

	// Toggling twice returns to the starting set.
	again := ToggleTemplate(ToggleTemplate(sel, vpc), vpc)
	assert.Equal(t, sel, again)
}

func TestToggleTemplate_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	vpc, _ := TemplateByID("infra-basic-vpc")
	react, _ := TemplateByID("repo-react-starter")
	orig := []Template{vpc, react}

	_ = ToggleTemplate(orig, vpc)
	assert.Equal(t, "infra-basic-vpc", orig[0].ID)
	assert.Len(t, orig, 2)
}

func TestRelevantTemplates_FilterOnly(t *testing.T) {
	t.Parallel()
	all := RelevantTemplates(Templates, FilterAll, ProjectMobileApp, LangRust)
	assert.Len(t, all, len(Templates))

	infra := RelevantTemplates(Templates, FilterInfrastructure, "", "")
	require.Len(t, infra, 3)
	for _, tpl := range infra {
		assert.Equal(t, TemplateInfrastructure, tpl.Type)
	}

	repos := RelevantTemplates(Templates, FilterRepository, ProjectWebApp, LangPython)
	require.Len(t, repos, 3)
	for _, tpl := range repos {
		assert.Equal(t, TemplateRepository, tpl.Type)
	}
}

func TestResourcesOf(t *testing.T) {
	t.Parallel()
	vpc, _ := TemplateByID("infra-basic-vpc")
	react, _ := TemplateByID("repo-react-starter")

	infra := ResourcesOf([]Template{vpc, react}, TemplateInfrastructure)
	assert.Equal(t, vpc.Resources, infra)
	repo := ResourcesOf([]Template{vpc, react}, TemplateRepository)
	assert.Equal(t, react.Resources, repo)
}

func TestChoiceHelpers(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "PostgreSQL", ChoiceLabel(DataStores, "postgres"))
	assert.Equal(t, "unknown", ChoiceLabel(DataStores, "unknown"))
	assert.True(t, HasChoice(Environments, "staging"))
	assert.False(t, HasChoice(Environments, "qa"))
	_, ok := TemplateByID("nope")
	assert.False(t, ok)
}
