package provisioning

import (
	"context"
	"time"

	"github.com/imamik/onboard/internal/onboarding"
)

// Context wraps everything a phase needs: the step list it mutates, the
// observer and the callback that publishes snapshots to the caller.
type Context struct {
	context.Context
	Steps    []onboarding.ProvisioningStep
	Observer Observer
	Now      func() time.Time

	publish func([]onboarding.ProvisioningStep)
}

// NewContext creates a run context over a copy of steps. publish receives a
// fresh copy of the list every time a phase changes it; it may be nil.
func NewContext(ctx context.Context, steps []onboarding.ProvisioningStep, observer Observer, publish func([]onboarding.ProvisioningStep)) *Context {
	if observer == nil {
		observer = NewLogObserver(discardLogger())
	}
	return &Context{
		Context:  ctx,
		Steps:    copySteps(steps),
		Observer: observer,
		Now:      time.Now,
		publish:  publish,
	}
}

// Publish sends a snapshot of the current step list to the caller.
func (c *Context) Publish() {
	if c.publish != nil {
		c.publish(copySteps(c.Steps))
	}
}

func copySteps(steps []onboarding.ProvisioningStep) []onboarding.ProvisioningStep {
	out := make([]onboarding.ProvisioningStep, len(steps))
	for i, s := range steps {
		out[i] = s
		if s.StartTime != nil {
			t := *s.StartTime
			out[i].StartTime = &t
		}
		if s.EndTime != nil {
			t := *s.EndTime
			out[i].EndTime = &t
		}
	}
	return out
}
