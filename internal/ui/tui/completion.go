package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/onboard/internal/onboarding"
	"github.com/imamik/onboard/internal/ui/style"
	"github.com/imamik/onboard/internal/util/async"
)

// writeClipboard copies text to the system clipboard (for testing injection).
var writeClipboard = clipboard.WriteAll

type completionScreen struct {
	env    *env
	data   onboarding.CompletionData
	cursor int

	// copied maps an item index to the token of its visible indicator.
	copied map[int]int
	tokens int
}

func newCompletionScreen(e *env) *completionScreen {
	s := &completionScreen{env: e, copied: map[int]int{}}
	if c := e.store.State().Completion; c != nil {
		s.data = *c
	}
	return s
}

func (s *completionScreen) Init() tea.Cmd {
	return nil
}

// urls are the copyable items: the repository first, then the consoles.
func (s *completionScreen) urls() []string {
	if s.data.RepositoryURL == "" {
		return s.data.InfrastructureURLs
	}
	return append([]string{s.data.RepositoryURL}, s.data.InfrastructureURLs...)
}

func (s *completionScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		urls := s.urls()
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(urls)-1 {
				s.cursor++
			}
		case "c", "enter":
			if s.cursor < len(urls) {
				return s.copy(s.cursor, urls[s.cursor])
			}
		}

	case copiedMsg:
		if msg.err != nil {
			s.env.log.Error(msg.err, "failed to copy to clipboard")
			return nil
		}
		s.tokens++
		token := s.tokens
		s.copied[msg.index] = token
		gen, index := s.env.gen, msg.index
		return await(async.After(s.env.scope.Context(), s.env.deps.CopyFeedback, func() copyResetMsg {
			return copyResetMsg{gen: gen, index: index, token: token}
		}))

	case copyResetMsg:
		if s.copied[msg.index] == msg.token {
			delete(s.copied, msg.index)
		}
	}
	return nil
}

func (s *completionScreen) copy(index int, text string) tea.Cmd {
	gen := s.env.gen
	return func() tea.Msg {
		return copiedMsg{gen: gen, index: index, err: writeClipboard(text)}
	}
}

func (s *completionScreen) View(_ int) string {
	var b strings.Builder
	b.WriteString(style.Title.Render("  Your project is ready!"))
	b.WriteString("\n")
	b.WriteString(style.Subtitle.Render("  Everything has been provisioned. Here is how to get started."))
	b.WriteString("\n")

	section(&b, "Links")
	for i, u := range s.urls() {
		marker := ""
		if _, ok := s.copied[i]; ok {
			marker = " " + style.Ready.Render("copied")
		}
		line := u
		if i == s.cursor {
			line = style.Active.Render(u)
		}
		fmt.Fprintf(&b, "  %s%s%s\n", cursorPrefix(i == s.cursor), line, marker)
	}

	section(&b, "Access details")
	for _, d := range s.data.AccessDetails {
		fmt.Fprintf(&b, "    - %s\n", d)
	}

	section(&b, "Next steps")
	for i, n := range s.data.NextSteps {
		fmt.Fprintf(&b, "    %d. %s\n", i+1, n)
	}
	return b.String()
}

func (s *completionScreen) Help() string {
	return "up/down: select link  |  c: copy  |  r: start over"
}
