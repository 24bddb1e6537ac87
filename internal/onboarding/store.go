package onboarding

import (
	"github.com/go-logr/logr"
)

// Actions are the named update operations a screen may use to push changes
// into the wizard state.
type Actions interface {
	UpdateConfig(patch ConfigPatch)
	UpdateTemplates(templates []Template)
	UpdateValidationResults(results []ValidationResult)
	UpdateProvisioningSteps(steps []ProvisioningStep)
	SetUser(user User)
	Complete(data CompletionData) bool
}

// Recorder receives notifications about state transitions. It is satisfied by
// the metrics package.
type Recorder interface {
	StepEntered(step Step)
	UserAuthenticated(provider string)
	SessionCompleted()
}

type nopRecorder struct{}

func (nopRecorder) StepEntered(Step)         {}
func (nopRecorder) UserAuthenticated(string) {}
func (nopRecorder) SessionCompleted()        {}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for transition logs.
func WithLogger(log logr.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithRecorder sets the transition recorder.
func WithRecorder(rec Recorder) Option {
	return func(s *Store) {
		if rec != nil {
			s.rec = rec
		}
	}
}

// Store owns the onboarding State. Every operation is a pure merge over the
// previous state; none can fail.
//
// A Store has exactly one writer and is not safe for concurrent use.
type Store struct {
	state State
	log   logr.Logger
	rec   Recorder
}

var _ Actions = (*Store)(nil)

// NewStore creates a Store holding the initial state.
func NewStore(opts ...Option) *Store {
	s := &Store{
		log: logr.Discard(),
		rec: nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = initialState()
	s.rec.StepEntered(s.state.CurrentStep)
	return s
}

func initialState() State {
	return State{
		CurrentStep:       StepAuth,
		SelectedTemplates: []Template{},
		ValidationResults: []ValidationResult{},
		Provisioning:      []ProvisioningStep{},
	}
}

// State returns a deep copy of the current state.
func (s *Store) State() State {
	return cloneState(s.state)
}

// CurrentStep returns the active step.
func (s *Store) CurrentStep() Step {
	return s.state.CurrentStep
}

// NextStep advances to the following step, clamped to the last step.
func (s *Store) NextStep() {
	s.moveTo(s.state.CurrentStep + 1)
}

// PrevStep goes back one step, clamped to the first step.
func (s *Store) PrevStep() {
	s.moveTo(s.state.CurrentStep - 1)
}

func (s *Store) moveTo(target Step) {
	from := s.state.CurrentStep
	to := clampStep(target)
	if to == from {
		return
	}
	s.state.CurrentStep = to
	s.log.V(1).Info("step changed", "from", from.Title(), "to", to.Title())
	s.rec.StepEntered(to)
}

// UpdateConfig shallow-merges patch into the project config.
func (s *Store) UpdateConfig(patch ConfigPatch) {
	s.state.Config = patch.Apply(s.state.Config)
}

// UpdateTemplates replaces the selected templates. Duplicate ids are dropped,
// keeping the first occurrence.
func (s *Store) UpdateTemplates(templates []Template) {
	s.state.SelectedTemplates = dedupeTemplates(templates)
	s.log.V(1).Info("templates updated", "count", len(s.state.SelectedTemplates))
}

// UpdateValidationResults replaces the validation results.
func (s *Store) UpdateValidationResults(results []ValidationResult) {
	s.state.ValidationResults = append([]ValidationResult{}, results...)
}

// UpdateProvisioningSteps replaces the provisioning step list.
func (s *Store) UpdateProvisioningSteps(steps []ProvisioningStep) {
	s.state.Provisioning = cloneSteps(steps)
}

// SetUser records the authenticated user and seeds the config owner and team
// from it, overwriting earlier values.
func (s *Store) SetUser(user User) {
	u := user
	s.state.User = &u
	s.state.Config.Owner = user.Email
	s.state.Config.Team = user.Team
	s.log.Info("user authenticated", "email", user.Email, "provider", user.Provider)
	s.rec.UserAuthenticated(user.Provider)
}

// Complete marks the session complete and stores the payload. It returns false
// without changing anything when the session is already complete.
func (s *Store) Complete(data CompletionData) bool {
	if s.state.IsComplete {
		return false
	}
	d := cloneCompletion(data)
	s.state.IsComplete = true
	s.state.Completion = &d
	s.log.Info("onboarding complete", "repository", data.RepositoryURL)
	s.rec.SessionCompleted()
	return true
}

// Reset discards the session and returns to the initial state.
func (s *Store) Reset() {
	s.state = initialState()
	s.rec.StepEntered(s.state.CurrentStep)
}

// CanProceed reports whether forward navigation from the current step is
// allowed.
func (s *Store) CanProceed() bool {
	return CanProceed(s.state)
}

// CanProceed evaluates the proceed predicate for st.CurrentStep. Each step
// only looks at its own fields.
func CanProceed(st State) bool {
	cfg := st.Config
	switch st.CurrentStep {
	case StepAuth:
		return st.User != nil
	case StepDetails:
		return cfg.Name != "" && cfg.ProjectType != "" && cfg.Language != ""
	case StepTemplates:
		return len(st.SelectedTemplates) > 0
	case StepConfiguration:
		return cfg.Environment != "" && cfg.DataStore != ""
	case StepReview:
		return !st.HasErrors()
	case StepProvisioning:
		return true
	case StepComplete:
		return st.IsComplete
	default:
		return false
	}
}

func dedupeTemplates(templates []Template) []Template {
	seen := make(map[string]bool, len(templates))
	out := make([]Template, 0, len(templates))
	for _, t := range templates {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		out = append(out, t)
	}
	return out
}

func cloneSteps(steps []ProvisioningStep) []ProvisioningStep {
	out := make([]ProvisioningStep, len(steps))
	for i, st := range steps {
		out[i] = st
		if st.StartTime != nil {
			t := *st.StartTime
			out[i].StartTime = &t
		}
		if st.EndTime != nil {
			t := *st.EndTime
			out[i].EndTime = &t
		}
	}
	return out
}

func cloneCompletion(d CompletionData) CompletionData {
	return CompletionData{
		RepositoryURL:      d.RepositoryURL,
		InfrastructureURLs: append([]string{}, d.InfrastructureURLs...),
		AccessDetails:      append([]string{}, d.AccessDetails...),
		NextSteps:          append([]string{}, d.NextSteps...),
	}
}

func cloneState(st State) State {
	out := st
	if st.User != nil {
		u := *st.User
		out.User = &u
	}
	out.Config = st.Config.Clone()
	out.SelectedTemplates = append([]Template{}, st.SelectedTemplates...)
	out.ValidationResults = append([]ValidationResult{}, st.ValidationResults...)
	out.Provisioning = cloneSteps(st.Provisioning)
	if st.Completion != nil {
		c := cloneCompletion(*st.Completion)
		out.Completion = &c
	}
	return out
}
