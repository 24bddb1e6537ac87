package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"github.com/imamik/onboard/internal/identity"
	"github.com/imamik/onboard/internal/onboarding"
	"github.com/imamik/onboard/internal/provisioning"
	"github.com/imamik/onboard/internal/util/ptr"
)

func testDeps(store *onboarding.Store) Deps {
	return Deps{
		Store:         store,
		Authenticator: identity.NewAuthenticator(0),
		Runner:        provisioning.NewRunner(provisioning.Delays{}, logr.Discard()),
	}
}

// storeAt returns a store with valid inputs for every step before step,
// positioned on step.
func storeAt(step onboarding.Step) *onboarding.Store {
	s := onboarding.NewStore()
	gh, _ := identity.Lookup(identity.GitHub)
	s.SetUser(gh.User)
	s.UpdateConfig(onboarding.ConfigPatch{
		Name:        ptr.String("checkout"),
		DisplayName: ptr.String("Checkout"),
		Description: ptr.String("Checkout service for the shop"),
		ProjectType: ptr.To(onboarding.ProjectAPIService),
		Language:    ptr.To(onboarding.LangGo),
		Environment: ptr.To(onboarding.EnvStaging),
		DataStore:   ptr.To(onboarding.StorePostgres),
	})
	vpc, _ := onboarding.TemplateByID("infra-basic-vpc")
	s.UpdateTemplates([]onboarding.Template{vpc})
	for s.CurrentStep() < step {
		s.NextStep()
	}
	return s
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// start runs the mounted screen's initial command to completion.
func start(t *testing.T, m Model) Model {
	t.Helper()
	return settle(t, m, m.screen.Init())
}

// press sends a key and settles the resulting commands.
func press(t *testing.T, m Model, k tea.KeyMsg) Model {
	t.Helper()
	m, cmd := send(m, k)
	return settle(t, m, cmd)
}

// typeText sends s one rune at a time.
func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, runes(string(r)))
	}
	return m
}

// settle executes cmd and feeds every resulting message back into the model
// until no command is left. Ticks and quit messages are dropped.
func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	deadline := time.Now().Add(5 * time.Second)
	for len(queue) > 0 {
		if time.Now().After(deadline) {
			t.Fatal("model did not settle")
		}
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case nil, TickMsg, tea.QuitMsg:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			var next tea.Cmd
			m, next = send(m, msg)
			queue = append(queue, next)
		}
	}
	return m
}
