package onboarding

import "fmt"

// Step is the index of a wizard screen.
type Step int

// Wizard steps in the order they are visited.
const (
	StepAuth Step = iota
	StepDetails
	StepTemplates
	StepConfiguration
	StepReview
	StepProvisioning
	StepComplete
)

// TotalSteps is the number of wizard steps.
const TotalSteps = 7

var stepTitles = [TotalSteps]string{
	"Authentication",
	"Project Details",
	"Template Selection",
	"Configuration",
	"Review",
	"Provisioning",
	"Complete",
}

// Steps returns all steps in order.
func Steps() []Step {
	steps := make([]Step, TotalSteps)
	for i := range steps {
		steps[i] = Step(i)
	}
	return steps
}

// Title returns the display title of the step.
func (s Step) Title() string {
	if s < 0 || int(s) >= TotalSteps {
		return fmt.Sprintf("Step %d", int(s))
	}
	return stepTitles[s]
}

// String implements fmt.Stringer.
func (s Step) String() string {
	return s.Title()
}

// ShowsNext reports whether the shell renders the "next" control on this step.
func (s Step) ShowsNext() bool {
	return s >= StepDetails && s <= StepReview
}

// ShowsPrevious reports whether the shell renders the "previous" control on
// this step.
func (s Step) ShowsPrevious() bool {
	return s >= StepDetails && s <= StepProvisioning
}

func clampStep(s Step) Step {
	if s < 0 {
		return 0
	}
	if int(s) > TotalSteps-1 {
		return Step(TotalSteps - 1)
	}
	return s
}
