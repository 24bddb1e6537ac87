package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"github.com/imamik/onboard/internal/identity"
	"github.com/imamik/onboard/internal/onboarding"
	"github.com/imamik/onboard/internal/provisioning"
	"github.com/imamik/onboard/internal/util/async"
)

const tickInterval = 150 * time.Millisecond

// ReviewObserver receives every set of review findings.
type ReviewObserver interface {
	ObserveReview(results []onboarding.ValidationResult)
}

// Deps are the collaborators of the wizard.
type Deps struct {
	Store         *onboarding.Store
	Authenticator *identity.Authenticator
	Runner        *provisioning.Runner
	Review        ReviewObserver

	// AdvanceDelay is shown before an automatic step transition.
	AdvanceDelay time.Duration
	// CopyFeedback is how long a "copied" indicator stays visible.
	CopyFeedback time.Duration

	Log logr.Logger
}

// env is what a mounted screen may touch. It lives exactly as long as the
// mount: the scope is closed and a new env with the next generation is
// created on every step change.
type env struct {
	store *onboarding.Store
	deps  Deps
	scope *async.Scope
	gen   int
	log   logr.Logger
}

// screen is one mounted wizard step.
type screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(frame int) string
	Help() string
}

// Model is the Bubble Tea model of the wizard shell.
type Model struct {
	deps   Deps
	env    *env
	screen screen

	// Animation
	SpinnerFrame int

	// UI state
	Width    int
	Height   int
	Err      error
	Quitting bool
}

// NewModel creates the wizard model and mounts the store's current step.
func NewModel(deps Deps) Model {
	if deps.Store == nil {
		deps.Store = onboarding.NewStore()
	}
	if deps.Log.GetSink() == nil {
		deps.Log = logr.Discard()
	}
	if deps.Authenticator == nil {
		deps.Authenticator = identity.NewAuthenticator(identity.DefaultDelay)
	}
	if deps.Runner == nil {
		deps.Runner = provisioning.NewRunner(provisioning.DefaultDelays(), deps.Log)
	}
	m := Model{deps: deps}
	m.mountScreen()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.screen.Init())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m.quit()
		case "q":
			if m.currentStep() == onboarding.StepComplete {
				return m.quit()
			}
		case "r":
			if m.currentStep() == onboarding.StepComplete {
				return m.restart()
			}
		case "ctrl+n", "pgdown":
			return m.next()
		case "ctrl+p", "pgup":
			return m.previous()
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case TickMsg:
		m.SpinnerFrame++
		return m, tickCmd()

	case ErrMsg:
		m.Err = msg.Err
		return m.quit()

	case advanceMsg:
		if msg.gen != m.env.gen {
			return m, nil
		}
		return m.advance()
	}

	if s, ok := msg.(scoped); ok && s.generation() != m.env.gen {
		return m, nil
	}
	return m, m.screen.Update(msg)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	return renderView(m)
}

// Store returns the wizard store.
func (m Model) Store() *onboarding.Store {
	return m.deps.Store
}

// Close cancels everything the mounted screen started.
func (m Model) Close() {
	if m.env != nil {
		m.env.scope.Close()
	}
}

func (m Model) currentStep() onboarding.Step {
	return m.deps.Store.CurrentStep()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.Close()
	m.Quitting = true
	return m, tea.Quit
}

// next is the user-driven forward transition.
func (m Model) next() (tea.Model, tea.Cmd) {
	step := m.currentStep()
	if !step.ShowsNext() || !m.deps.Store.CanProceed() {
		return m, nil
	}
	return m.advance()
}

// advance moves forward when the proceed predicate holds. It is a no-op on
// the last step.
func (m Model) advance() (tea.Model, tea.Cmd) {
	store := m.deps.Store
	if store.CurrentStep() == onboarding.StepComplete || !store.CanProceed() {
		return m, nil
	}
	store.NextStep()
	cmd := m.remount()
	return m, cmd
}

// restart discards the finished session and returns to sign-in.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.deps.Store.Reset()
	cmd := m.remount()
	return m, cmd
}

func (m Model) previous() (tea.Model, tea.Cmd) {
	if !m.currentStep().ShowsPrevious() {
		return m, nil
	}
	m.deps.Store.PrevStep()
	cmd := m.remount()
	return m, cmd
}

// remount tears down the current screen and mounts the one for the store's
// step. The env pointer is replaced in place so the returned model and the
// receiver agree on it.
func (m *Model) remount() tea.Cmd {
	m.mountScreen()
	return m.screen.Init()
}

func (m *Model) mountScreen() {
	gen := 0
	if m.env != nil {
		m.env.scope.Close()
		gen = m.env.gen + 1
	}
	e := &env{
		store: m.deps.Store,
		deps:  m.deps,
		scope: async.NewScope(context.Background()),
		gen:   gen,
	}
	step := m.currentStep()
	e.log = m.deps.Log.WithValues("step", step.Title(), "mount", gen)
	m.env = e
	m.screen = newScreen(step, e)
}

func newScreen(step onboarding.Step, e *env) screen {
	switch step {
	case onboarding.StepAuth:
		return newAuthScreen(e)
	case onboarding.StepDetails:
		return newDetailsScreen(e)
	case onboarding.StepTemplates:
		return newTemplatesScreen(e)
	case onboarding.StepConfiguration:
		return newConfigurationScreen(e)
	case onboarding.StepReview:
		return newReviewScreen(e)
	case onboarding.StepProvisioning:
		return newProvisioningScreen(e)
	default:
		return newCompletionScreen(e)
	}
}

// scheduleAdvance asks the shell to move forward after the display delay.
// The request is dropped if the screen is torn down first.
func (e *env) scheduleAdvance() tea.Cmd {
	gen := e.gen
	return await(async.After(e.scope.Context(), e.deps.AdvanceDelay, func() advanceMsg {
		return advanceMsg{gen: gen}
	}))
}

// await turns a future into a command. A cancelled future yields no message.
func await[T any](f *async.Future[T]) tea.Cmd {
	return func() tea.Msg {
		v, err := f.Await(context.Background())
		if err != nil {
			return nil
		}
		return v
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}
