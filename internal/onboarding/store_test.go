package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/onboard/internal/util/ptr"
)

type fakeRecorder struct {
	entered   []Step
	providers []string
	completed int
}

func (f *fakeRecorder) StepEntered(step Step)             { f.entered = append(f.entered, step) }
func (f *fakeRecorder) UserAuthenticated(provider string) { f.providers = append(f.providers, provider) }
func (f *fakeRecorder) SessionCompleted()                 { f.completed++ }

func testUser() User {
	return User{ID: "1", Name: "Alex Chen", Email: "alex.chen@company.com", Role: "Senior Developer", Team: "Platform Engineering", Provider: "GitHub"}
}

func TestNewStore_InitialState(t *testing.T) {
	t.Parallel()
	s := NewStore()
	st := s.State()

	assert.Equal(t, StepAuth, st.CurrentStep)
	assert.Nil(t, st.User)
	assert.Empty(t, st.SelectedTemplates)
	assert.Empty(t, st.ValidationResults)
	assert.Empty(t, st.Provisioning)
	assert.False(t, st.IsComplete)
	assert.Nil(t, st.Completion)
}

func TestStore_StepClamping(t *testing.T) {
	t.Parallel()
	s := NewStore()

	for range 20 {
		s.NextStep()
	}
	assert.Equal(t, StepComplete, s.CurrentStep())

	for range 20 {
		s.PrevStep()
	}
	assert.Equal(t, StepAuth, s.CurrentStep())

	s.PrevStep()
	assert.Equal(t, StepAuth, s.CurrentStep())
}

func TestStore_RecorderSeesTransitions(t *testing.T) {
	t.Parallel()
	rec := &fakeRecorder{}
	s := NewStore(WithRecorder(rec))

	s.NextStep()
	s.NextStep()
	s.PrevStep()
	s.PrevStep()
	s.PrevStep() // clamped, not recorded

	assert.Equal(t, []Step{StepAuth, StepDetails, StepTemplates, StepDetails, StepAuth}, rec.entered)
}

func TestStore_UpdateConfigMerges(t *testing.T) {
	t.Parallel()
	s := NewStore()

	s.UpdateConfig(ConfigPatch{Name: ptr.String("first"), Language: ptr.To(LangGo)})
	s.UpdateConfig(ConfigPatch{Name: ptr.String("second")})

	cfg := s.State().Config
	assert.Equal(t, "second", cfg.Name)
	assert.Equal(t, LangGo, cfg.Language)
}

func TestStore_UpdateConfigReplacesTagsWholesale(t *testing.T) {
	t.Parallel()
	s := NewStore()

	s.UpdateConfig(ConfigPatch{Tags: map[string]string{"Team": "a", "Project": "p"}})
	s.UpdateConfig(ConfigPatch{Tags: map[string]string{"Team": "b"}})

	assert.Equal(t, map[string]string{"Team": "b"}, s.State().Config.Tags)
}

func TestStore_UpdateTemplatesDedupes(t *testing.T) {
	t.Parallel()
	s := NewStore()
	vpc, _ := TemplateByID("infra-basic-vpc")
	react, _ := TemplateByID("repo-react-starter")

	s.UpdateTemplates([]Template{vpc, react, vpc})

	got := s.State().SelectedTemplates
	require.Len(t, got, 2)
	assert.Equal(t, "infra-basic-vpc", got[0].ID)
	assert.Equal(t, "repo-react-starter", got[1].ID)
}

func TestStore_SetUserSeedsOwnerAndTeam(t *testing.T) {
	t.Parallel()
	rec := &fakeRecorder{}
	s := NewStore(WithRecorder(rec))
	s.UpdateConfig(ConfigPatch{Owner: ptr.String("someone@else.com"), Team: ptr.String("Other")})

	s.SetUser(testUser())

	st := s.State()
	require.NotNil(t, st.User)
	assert.Equal(t, "alex.chen@company.com", st.Config.Owner)
	assert.Equal(t, "Platform Engineering", st.Config.Team)
	assert.Equal(t, []string{"GitHub"}, rec.providers)
}

func TestStore_CompleteOnlyOnce(t *testing.T) {
	t.Parallel()
	rec := &fakeRecorder{}
	s := NewStore(WithRecorder(rec))

	first := CompletionData{RepositoryURL: "https://example.com/first"}
	second := CompletionData{RepositoryURL: "https://example.com/second"}

	assert.True(t, s.Complete(first))
	assert.False(t, s.Complete(second))

	st := s.State()
	assert.True(t, st.IsComplete)
	require.NotNil(t, st.Completion)
	assert.Equal(t, "https://example.com/first", st.Completion.RepositoryURL)
	assert.Equal(t, 1, rec.completed)
}

func TestStore_ResetClearsCompletion(t *testing.T) {
	t.Parallel()
	s := NewStore()
	s.SetUser(testUser())
	s.NextStep()
	s.Complete(CompletionData{RepositoryURL: "x"})

	s.Reset()

	st := s.State()
	assert.False(t, st.IsComplete)
	assert.Nil(t, st.Completion)
	assert.Nil(t, st.User)
	assert.Equal(t, StepAuth, st.CurrentStep)
}

func TestStore_StateIsACopy(t *testing.T) {
	t.Parallel()
	s := NewStore()
	s.UpdateConfig(ConfigPatch{Tags: map[string]string{"Team": "a"}, Compliance: []string{"gdpr"}})

	st := s.State()
	st.Config.Tags["Team"] = "mutated"
	st.Config.Compliance[0] = "mutated"

	fresh := s.State()
	assert.Equal(t, "a", fresh.Config.Tags["Team"])
	assert.Equal(t, "gdpr", fresh.Config.Compliance[0])
}

func TestCanProceed(t *testing.T) {
	t.Parallel()
	vpc, _ := TemplateByID("infra-basic-vpc")
	user := testUser()

	tests := []struct {
		name  string
		state State
		want  bool
	}{
		{"auth without user", State{CurrentStep: StepAuth}, false},
		{"auth with user", State{CurrentStep: StepAuth, User: &user}, true},
		{"details missing language", State{CurrentStep: StepDetails, Config: ProjectConfig{Name: "abc", ProjectType: ProjectWebApp}}, false},
		{"details complete", State{CurrentStep: StepDetails, Config: ProjectConfig{Name: "abc", ProjectType: ProjectWebApp, Language: LangGo}}, true},
		{"templates empty", State{CurrentStep: StepTemplates}, false},
		{"templates selected", State{CurrentStep: StepTemplates, SelectedTemplates: []Template{vpc}}, true},
		{"configuration missing store", State{CurrentStep: StepConfiguration, Config: ProjectConfig{Environment: EnvStaging}}, false},
		{"configuration complete", State{CurrentStep: StepConfiguration, Config: ProjectConfig{Environment: EnvStaging, DataStore: StoreNone}}, true},
		{"review with error", State{CurrentStep: StepReview, ValidationResults: []ValidationResult{{Field: "templates", Type: SeverityError}}}, false},
		{"review with warning only", State{CurrentStep: StepReview, ValidationResults: []ValidationResult{{Field: "budget", Type: SeverityWarning}}}, true},
		{"provisioning", State{CurrentStep: StepProvisioning}, true},
		{"complete not done", State{CurrentStep: StepComplete}, false},
		{"complete done", State{CurrentStep: StepComplete, IsComplete: true}, true},
		{"out of range", State{CurrentStep: Step(42)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanProceed(tt.state))
		})
	}
}

func TestCanProceed_IgnoresUnrelatedFields(t *testing.T) {
	t.Parallel()
	user := testUser()
	vpc, _ := TemplateByID("infra-basic-vpc")

	// Everything except the templates set: step 2 must still be blocked.
	st := State{
		CurrentStep:       StepTemplates,
		User:              &user,
		Config:            ProjectConfig{Name: "abc", ProjectType: ProjectWebApp, Language: LangGo, Environment: EnvProduction, DataStore: StoreNone},
		ValidationResults: []ValidationResult{},
		IsComplete:        true,
	}
	assert.False(t, CanProceed(st))

	// Only the templates set: step 2 may proceed.
	assert.True(t, CanProceed(State{CurrentStep: StepTemplates, SelectedTemplates: []Template{vpc}}))
}

func TestStep_NavigationVisibility(t *testing.T) {
	t.Parallel()
	for _, s := range Steps() {
		assert.Equal(t, s >= StepDetails && s <= StepReview, s.ShowsNext(), "next on %s", s)
		assert.Equal(t, s >= StepDetails && s <= StepProvisioning, s.ShowsPrevious(), "previous on %s", s)
	}
	assert.Equal(t, "Template Selection", StepTemplates.Title())
	assert.Equal(t, "Step 9", Step(9).Title())
}
