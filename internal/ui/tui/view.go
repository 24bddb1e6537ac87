package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/imamik/onboard/internal/onboarding"
	"github.com/imamik/onboard/internal/ui/style"
)

func renderView(m Model) string {
	var b strings.Builder

	renderHeader(&b, m)
	renderStepIndicator(&b, m)

	b.WriteString("\n")
	b.WriteString(m.screen.View(m.SpinnerFrame))
	b.WriteString("\n")

	if m.Err != nil {
		fmt.Fprintf(&b, "  %s %s\n", style.Failed.Render(style.CrossMark), style.Failed.Render(m.Err.Error()))
	}

	renderFooter(&b, m)
	return b.String()
}

func renderHeader(b *strings.Builder, m Model) {
	b.WriteString(style.Title.Render("onboard: Developer Onboarding"))

	st := m.deps.Store.State()
	status := " "
	switch {
	case st.IsComplete:
		status += style.Ready.Render("Complete")
	case st.User != nil:
		status += style.Dim.Render(fmt.Sprintf("%s (%s)", st.User.Name, st.User.Provider))
	default:
		status += style.Dim.Render("Not signed in")
	}
	b.WriteString(status)
	b.WriteString("\n")
}

func renderStepIndicator(b *strings.Builder, m Model) {
	current := m.currentStep()

	parts := make([]string, 0, onboarding.TotalSteps)
	for _, step := range onboarding.Steps() {
		var icon string
		var sf style.Func
		switch {
		case step < current:
			icon, sf = style.CheckMark, style.F(style.Ready)
		case step == current:
			icon, sf = style.SpinnerFrame(m.SpinnerFrame), style.F(style.Active)
		default:
			icon, sf = style.Pending, style.F(style.Dim)
		}
		parts = append(parts, sf(icon+" "+step.Title()))
	}

	fmt.Fprintf(b, "  %s\n", strings.Join(parts, "  "))
	fmt.Fprintf(b, "  %s %s\n",
		style.ProgressBar(float64(current)/float64(onboarding.TotalSteps-1), progressWidth(m.Width)),
		style.Subtitle.Render(fmt.Sprintf("Step %d of %d: %s", int(current)+1, onboarding.TotalSteps, current.Title())))
}

func renderFooter(b *strings.Builder, m Model) {
	step := m.currentStep()
	var parts []string
	if step.ShowsPrevious() {
		parts = append(parts, "ctrl+p: back")
	}
	if step.ShowsNext() {
		if m.deps.Store.CanProceed() {
			parts = append(parts, style.Active.Render("ctrl+n: next"))
		} else {
			parts = append(parts, "ctrl+n: next (incomplete)")
		}
	}
	if help := m.screen.Help(); help != "" {
		parts = append(parts, help)
	}
	if step == onboarding.StepComplete {
		parts = append(parts, "q: quit")
	} else {
		parts = append(parts, "ctrl+c: quit")
	}
	b.WriteString(style.Footer.Render("  " + strings.Join(parts, "  |  ")))
	b.WriteString("\n")
}

func progressWidth(width int) int {
	barWidth := 40
	if width > 0 && width < 80 {
		barWidth = width - 30
		if barWidth < 10 {
			barWidth = 10
		}
	}
	return barWidth
}

// Helper functions

func checkbox(on bool) string {
	if on {
		return style.Ready.Render(style.Selected)
	}
	return style.Dim.Render(style.Empty)
}

func cursorPrefix(active bool) string {
	if active {
		return style.Cursor.Render("> ")
	}
	return "  "
}

// cycle steps through values from current by delta, wrapping around. An
// unknown current value starts at the first or last entry.
func cycle(values []string, current string, delta int) string {
	if len(values) == 0 {
		return current
	}
	idx := -1
	for i, v := range values {
		if v == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		if delta < 0 {
			return values[len(values)-1]
		}
		return values[0]
	}
	n := len(values)
	return values[((idx+delta)%n+n)%n]
}

func choiceValues(choices []onboarding.Choice) []string {
	out := make([]string, len(choices))
	for i, c := range choices {
		out[i] = c.Value
	}
	return out
}

func formatBudget(b *int) string {
	if b == nil || *b == 0 {
		return "No limit"
	}
	return fmt.Sprintf("$%d/month", *b)
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}
