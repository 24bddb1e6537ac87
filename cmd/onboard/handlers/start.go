package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/imamik/onboard/internal/onboarding"
	"github.com/imamik/onboard/internal/ui/tui"
)

// ErrNotTerminal is returned by Start when stdout is not a terminal.
var ErrNotTerminal = errors.New("the interactive wizard needs a terminal; use 'onboard apply -f answers.yaml' instead")

// Factory function variables for start - can be replaced in tests.
var (
	// isTerminal reports whether stdout is an interactive terminal.
	isTerminal = func() bool {
		fd := os.Stdout.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}

	// runWizardTUI runs the Bubble Tea wizard.
	runWizardTUI = func(ctx context.Context, deps tui.Deps) (*onboarding.Store, error) {
		m, err := tui.RunWizardTUI(ctx, deps)
		return m.Store(), err
	}
)

// Start runs the interactive wizard and prints a summary once it exits.
func Start(ctx context.Context, opts GlobalOptions) error {
	if !isTerminal() {
		return ErrNotTerminal
	}

	s, err := openSession(ctx, opts, false)
	if err != nil {
		return err
	}
	defer s.Close()

	store, err := runWizardTUI(s.ctx, tui.Deps{
		Store:         s.store(),
		Authenticator: s.authenticator(),
		Runner:        s.runner(map[string]string{"mode": "interactive"}),
		Review:        s.recorder,
		AdvanceDelay:  s.settings.AdvanceDelay,
		CopyFeedback:  s.settings.CopyFeedback,
		Log:           s.log.WithName("tui"),
	})
	if err != nil {
		return err
	}

	printStartSummary(store.State())
	return nil
}

// printStartSummary prints where the session ended.
func printStartSummary(st onboarding.State) {
	fmt.Println()
	if st.IsComplete && st.Completion != nil {
		fmt.Println("Onboarding complete!")
		fmt.Println()
		fmt.Printf("  Repository: %s\n", st.Completion.RepositoryURL)
		for _, url := range st.Completion.InfrastructureURLs {
			fmt.Printf("  Console:    %s\n", url)
		}
		return
	}
	fmt.Printf("Onboarding stopped at step %d of %d: %s\n", int(st.CurrentStep)+1, onboarding.TotalSteps, st.CurrentStep.Title())
	fmt.Println("Run 'onboard start' again to begin a new session.")
}
