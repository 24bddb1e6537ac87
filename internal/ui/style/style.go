// Package style holds the lipgloss palette and status icons shared by the
// interactive wizard and the headless printer.
package style

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorGreen  = lipgloss.Color("#22c55e")
	ColorRed    = lipgloss.Color("#ef4444")
	ColorYellow = lipgloss.Color("#eab308")
	ColorBlue   = lipgloss.Color("#3b82f6")
	ColorDim    = lipgloss.Color("#6b7280")
	ColorWhite  = lipgloss.Color("#f9fafb")

	// Styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorWhite)

	Subtitle = lipgloss.NewStyle().
			Foreground(ColorDim)

	Section = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorBlue).
		MarginTop(1)

	Ready = lipgloss.NewStyle().
		Foreground(ColorGreen)

	Failed = lipgloss.NewStyle().
		Foreground(ColorRed)

	Warning = lipgloss.NewStyle().
		Foreground(ColorYellow)

	Dim = lipgloss.NewStyle().
		Foreground(ColorDim)

	Active = lipgloss.NewStyle().
		Foreground(ColorWhite).
		Bold(true)

	Cursor = lipgloss.NewStyle().
		Foreground(ColorBlue).
		Bold(true)

	ProgressFull  = lipgloss.NewStyle().Foreground(ColorGreen)
	ProgressEmpty = lipgloss.NewStyle().Foreground(ColorDim)

	Footer = lipgloss.NewStyle().
		Foreground(ColorDim).
		MarginTop(1)

	Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 1)
)

// Status icons.
const (
	CheckMark = "[OK]"
	CrossMark = "[!!]"
	Spinner   = "[..]"
	Pending   = "[  ]"
	WarnMark  = "[??]"
	Selected  = "[x]"
	Empty     = "[ ]"
)

// SpinnerFrames animate a running item.
var SpinnerFrames = []string{"[.  ]", "[.. ]", "[...]", "[ ..]", "[  .]", "[   ]"}

// Func is a single-string styling function.
type Func func(string) string

// F wraps a lipgloss.Style into a Func.
func F(s lipgloss.Style) Func {
	return func(str string) string { return s.Render(str) }
}

// SpinnerFrame returns the spinner frame for a tick counter.
func SpinnerFrame(frame int) string {
	if len(SpinnerFrames) == 0 {
		return Spinner
	}
	if frame < 0 {
		frame = -frame
	}
	return SpinnerFrames[frame%len(SpinnerFrames)]
}

// ProgressBar renders a bar of width cells filled to progress (0..1).
func ProgressBar(progress float64, width int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(width))
	if filled > width {
		filled = width
	}
	return ProgressFull.Render(repeat("█", filled)) + ProgressEmpty.Render(repeat("░", width-filled))
}

func repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, 0, len(s)*n)
	for range n {
		out = append(out, s...)
	}
	return string(out)
}
