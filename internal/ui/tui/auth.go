package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/onboard/internal/identity"
	"github.com/imamik/onboard/internal/ui/style"
	"github.com/imamik/onboard/internal/util/async"
)

type authScreen struct {
	env     *env
	cursor  int
	pending string // provider id being authenticated
	message string
}

func newAuthScreen(e *env) *authScreen {
	return &authScreen{env: e}
}

func (s *authScreen) Init() tea.Cmd {
	if st := s.env.store.State(); st.User != nil && s.env.store.CanProceed() {
		s.message = fmt.Sprintf("Signed in as %s. Proceeding to project setup...", st.User.Name)
		return s.env.scheduleAdvance()
	}
	return nil
}

func (s *authScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if s.pending != "" {
			return nil
		}
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(identity.Providers)-1 {
				s.cursor++
			}
		case "enter", " ":
			return s.authenticate(identity.Providers[s.cursor].ID)
		}

	case authenticatedMsg:
		s.pending = ""
		if msg.err != nil {
			s.env.log.Info("authentication aborted", "provider", msg.provider.ID, "error", msg.err.Error())
			return nil
		}
		s.env.store.SetUser(msg.provider.User)
		s.message = identity.SuccessMessage(msg.provider)
		if s.env.store.CanProceed() {
			return s.env.scheduleAdvance()
		}
	}
	return nil
}

func (s *authScreen) authenticate(id string) tea.Cmd {
	s.pending = id
	s.message = ""
	gen := s.env.gen
	auth := s.env.deps.Authenticator
	return await(async.Start(s.env.scope, func(ctx context.Context) (authenticatedMsg, error) {
		p, err := auth.Authenticate(ctx, id)
		if err != nil && ctx.Err() != nil {
			return authenticatedMsg{}, err
		}
		return authenticatedMsg{gen: gen, provider: p, err: err}, nil
	}))
}

func (s *authScreen) View(frame int) string {
	var b strings.Builder
	b.WriteString(style.Section.Render("  Sign in"))
	b.WriteString("\n")
	b.WriteString(style.Subtitle.Render("  Choose how you want to authenticate"))
	b.WriteString("\n\n")

	for i, p := range identity.Providers {
		icon := style.Pending
		sf := style.F(style.Dim)
		switch {
		case p.ID == s.pending:
			icon, sf = style.SpinnerFrame(frame), style.F(style.Active)
		case i == s.cursor:
			sf = style.F(style.Active)
		}
		fmt.Fprintf(&b, "  %s%s %-20s %s\n", cursorPrefix(i == s.cursor), sf(icon), sf(p.Name), style.Dim.Render(p.Description))
	}

	if s.pending != "" {
		fmt.Fprintf(&b, "\n  %s\n", style.Active.Render("Authenticating..."))
	}
	if s.message != "" {
		fmt.Fprintf(&b, "\n  %s %s\n", style.Ready.Render(style.CheckMark), style.Ready.Render(s.message))
	}
	return b.String()
}

func (s *authScreen) Help() string {
	if s.pending != "" {
		return ""
	}
	return "up/down: choose  |  enter: sign in"
}
