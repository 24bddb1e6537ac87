package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/onboard/internal/onboarding"
	"github.com/imamik/onboard/internal/provisioning"
	"github.com/imamik/onboard/internal/ui/style"
)

type provisioningScreen struct {
	env     *env
	steps   []onboarding.ProvisioningStep
	events  chan tea.Msg
	running bool
	done    bool
}

func newProvisioningScreen(e *env) *provisioningScreen {
	return &provisioningScreen{env: e, steps: e.store.State().Provisioning}
}

// Init starts a fresh run unless the session already completed, in which
// case the finished list is shown and the shell moves on.
func (s *provisioningScreen) Init() tea.Cmd {
	if s.env.store.State().IsComplete {
		s.done = true
		return s.env.scheduleAdvance()
	}

	gen := s.env.gen
	runner := s.env.deps.Runner
	events := make(chan tea.Msg)
	s.events = events
	s.running = true

	s.env.scope.Go(func(ctx context.Context) {
		defer close(events)
		data, err := runner.Run(ctx, func(steps []onboarding.ProvisioningStep) {
			select {
			case events <- provisioningMsg{gen: gen, steps: steps}:
			case <-ctx.Done():
			}
		})
		select {
		case events <- provisionedMsg{gen: gen, data: data, err: err}:
		case <-ctx.Done():
		}
	})
	return waitForEvent(events)
}

// waitForEvent delivers the next event of a run. A closed channel yields no
// message.
func waitForEvent(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}

func (s *provisioningScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case provisioningMsg:
		s.steps = msg.steps
		s.env.store.UpdateProvisioningSteps(msg.steps)
		return waitForEvent(s.events)

	case provisionedMsg:
		s.running = false
		if msg.err != nil {
			s.env.log.Info("provisioning aborted", "error", msg.err.Error())
			return nil
		}
		s.done = true
		if s.env.store.Complete(msg.data) {
			s.env.log.Info("provisioning finished", "steps", len(s.steps))
		}
		return s.env.scheduleAdvance()
	}
	return nil
}

func (s *provisioningScreen) View(frame int) string {
	var b strings.Builder
	b.WriteString(style.Section.Render("  Provisioning"))
	b.WriteString("\n")

	pct := provisioning.Percent(s.steps)
	fmt.Fprintf(&b, "  %s %d%%  %s\n\n",
		style.ProgressBar(float64(pct)/100, 40), pct,
		style.Dim.Render(fmt.Sprintf("%d/%d steps", provisioning.Done(s.steps), len(s.steps))))

	for _, step := range s.steps {
		var icon string
		var sf style.Func
		switch step.Status {
		case onboarding.StatusCompleted:
			icon, sf = style.CheckMark, style.F(style.Ready)
		case onboarding.StatusRunning:
			icon, sf = style.SpinnerFrame(frame), style.F(style.Active)
		case onboarding.StatusFailed:
			icon, sf = style.CrossMark, style.F(style.Failed)
		default:
			icon, sf = style.Pending, style.F(style.Dim)
		}
		fmt.Fprintf(&b, "    %s %-26s %s\n", sf(icon), sf(step.Name), style.Dim.Render(stepElapsed(step)))

		switch step.Status {
		case onboarding.StatusRunning:
			fmt.Fprintf(&b, "      %s\n", style.Dim.Render(step.Message))
		case onboarding.StatusCompleted:
			fmt.Fprintf(&b, "      %s\n", style.Dim.Render(step.Details))
		}
	}

	if s.done {
		fmt.Fprintf(&b, "\n  %s %s\n", style.Ready.Render(style.CheckMark), style.Ready.Render("Your project is ready"))
	}
	return b.String()
}

func stepElapsed(step onboarding.ProvisioningStep) string {
	switch {
	case step.StartTime == nil:
		return ""
	case step.EndTime != nil:
		return formatDuration(step.EndTime.Sub(*step.StartTime))
	default:
		return formatDuration(time.Since(*step.StartTime))
	}
}

func (s *provisioningScreen) Help() string {
	if s.running {
		return style.Warning.Render("going back cancels this run")
	}
	return ""
}
