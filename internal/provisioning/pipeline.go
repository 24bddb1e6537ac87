package provisioning

import (
	"fmt"
	"time"
)

// Pipeline runs phases sequentially.
type Pipeline struct {
	Phases []Phase
}

// NewPipeline creates a pipeline over phases.
func NewPipeline(phases ...Phase) *Pipeline {
	return &Pipeline{Phases: phases}
}

// Run executes every phase in order and stops at the first failure.
func (p *Pipeline) Run(ctx *Context) error {
	return RunPhases(ctx, p.Phases)
}

// RunPhases executes all provisioning phases sequentially.
func RunPhases(ctx *Context, phases []Phase) error {
	start := time.Now()
	ctx.Observer.Event(Event{
		Type:    EventRunStarted,
		Message: fmt.Sprintf("starting provisioning with %d phases", len(phases)),
	})

	for i, phase := range phases {
		if err := ctx.Err(); err != nil {
			LogPhaseFailed(ctx.Observer, phase.Name(), err)
			return fmt.Errorf("%s phase aborted: %w", phase.Name(), err)
		}

		phaseStart := time.Now()
		LogPhaseStart(ctx.Observer, phase.Name())
		ctx.Observer.Progress(phase.Name(), i+1, len(phases))

		if err := phase.Provision(ctx); err != nil {
			LogPhaseFailed(ctx.Observer, phase.Name(), err)
			return fmt.Errorf("%s phase failed: %w", phase.Name(), err)
		}

		LogPhaseComplete(ctx.Observer, phase.Name(), time.Since(phaseStart))
	}

	ctx.Observer.Event(Event{
		Type:    EventRunCompleted,
		Message: fmt.Sprintf("provisioning completed in %v", time.Since(start).Round(time.Millisecond)),
	})
	return nil
}
