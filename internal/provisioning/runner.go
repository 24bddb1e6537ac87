package provisioning

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/onboard/internal/onboarding"
	"github.com/imamik/onboard/internal/util/async"
)

// Delays controls the simulated timing of a run. Each step takes
// StepMin + rand*StepJitter and is followed by Pause.
type Delays struct {
	StepMin    time.Duration
	StepJitter time.Duration
	Pause      time.Duration
}

// DefaultDelays returns the interactive timing.
func DefaultDelays() Delays {
	return Delays{
		StepMin:    2 * time.Second,
		StepJitter: 3 * time.Second,
		Pause:      500 * time.Millisecond,
	}
}

// Duration returns the wait for a step given a random factor in [0,1).
func (d Delays) Duration(r float64) time.Duration {
	return d.StepMin + time.Duration(r*float64(d.StepJitter))
}

// Runner executes the simulated setup sequence.
type Runner struct {
	Delays    Delays
	Observer  Observer
	Durations DurationRecorder

	// Rand returns a value in [0,1). Now returns the current time.
	Rand func() float64
	Now  func() time.Time
}

// NewRunner creates a runner with the given delays that logs to log.
func NewRunner(delays Delays, log logr.Logger) *Runner {
	return &Runner{
		Delays:    delays,
		Observer:  NewLogObserver(log.WithName("provisioning")),
		Durations: nopDurations{},
		Rand:      rand.Float64,
		Now:       time.Now,
	}
}

// Phases returns one phase per initial step.
func (r *Runner) Phases() []Phase {
	steps := InitialSteps()
	phases := make([]Phase, len(steps))
	for i, s := range steps {
		phases[i] = &simulatedPhase{index: i, id: s.ID, runner: r}
	}
	return phases
}

// Run executes every step from the initial list, publishing a snapshot to
// update after each status change, and returns the completion payload. The
// run is not resumable: cancelling ctx aborts it and a later call starts over.
func (r *Runner) Run(ctx context.Context, update func([]onboarding.ProvisioningStep)) (onboarding.CompletionData, error) {
	pctx := NewContext(ctx, InitialSteps(), r.Observer, update)
	if r.Now != nil {
		pctx.Now = r.Now
	}
	pctx.Publish()

	if err := NewPipeline(r.Phases()...).Run(pctx); err != nil {
		return onboarding.CompletionData{}, err
	}
	return Completion(), nil
}

// simulatedPhase marks its step running, waits, then marks it completed.
type simulatedPhase struct {
	index  int
	id     string
	runner *Runner
}

func (p *simulatedPhase) Name() string { return p.id }

func (p *simulatedPhase) Provision(ctx *Context) error {
	if p.index >= len(ctx.Steps) {
		return fmt.Errorf("no step at index %d", p.index)
	}
	step := &ctx.Steps[p.index]

	started := ctx.Now()
	step.Status = onboarding.StatusRunning
	step.StartTime = &started
	ctx.Publish()

	r := 0.0
	if p.runner.Rand != nil {
		r = p.runner.Rand()
	}
	if err := async.Sleep(ctx, p.runner.Delays.Duration(r)); err != nil {
		return err
	}

	ended := ctx.Now()
	step.Status = onboarding.StatusCompleted
	step.EndTime = &ended
	step.Details = Details(step.ID)
	ctx.Publish()

	if p.runner.Durations != nil {
		p.runner.Durations.ObserveProvisioningStep(step.ID, ended.Sub(started))
	}

	return async.Sleep(ctx, p.runner.Delays.Pause)
}
