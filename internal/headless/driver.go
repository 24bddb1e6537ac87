package headless

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"

	"github.com/imamik/onboard/internal/config"
	"github.com/imamik/onboard/internal/identity"
	"github.com/imamik/onboard/internal/onboarding"
	"github.com/imamik/onboard/internal/provisioning"
)

// ErrStepBlocked is returned when a step's inputs do not allow proceeding.
var ErrStepBlocked = errors.New("step cannot proceed")

// ReviewObserver receives every set of review findings.
type ReviewObserver interface {
	ObserveReview(results []onboarding.ValidationResult)
}

// Options configures a headless run. Zero values fall back to instant
// authentication, default provisioning delays, stdout and a discard logger.
type Options struct {
	Authenticator *identity.Authenticator
	Runner        *provisioning.Runner
	Review        ReviewObserver
	Out           io.Writer
	Log           logr.Logger
}

// Driver applies one set of answers to a store.
type Driver struct {
	answers *config.Answers
	store   *onboarding.Store
	auth    *identity.Authenticator
	runner  *provisioning.Runner
	review  ReviewObserver
	printer *Printer
	log     logr.Logger
}

// NewDriver creates a driver for answers against store.
func NewDriver(answers *config.Answers, store *onboarding.Store, opts Options) *Driver {
	d := &Driver{
		answers: answers,
		store:   store,
		auth:    opts.Authenticator,
		runner:  opts.Runner,
		review:  opts.Review,
		log:     opts.Log,
	}
	if d.log.GetSink() == nil {
		d.log = logr.Discard()
	}
	if d.auth == nil {
		d.auth = identity.NewAuthenticator(0)
	}
	if d.runner == nil {
		d.runner = provisioning.NewRunner(provisioning.DefaultDelays(), d.log)
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	d.printer = NewPrinter(out)
	return d
}

// Run walks the store from its current step to the completion step and
// returns the final state. On error the returned state is the state at the
// point of failure.
func Run(ctx context.Context, answers *config.Answers, store *onboarding.Store, opts Options) (onboarding.State, error) {
	return NewDriver(answers, store, opts).Run(ctx)
}

// Run executes every remaining step.
func (d *Driver) Run(ctx context.Context) (onboarding.State, error) {
	for {
		step := d.store.CurrentStep()
		d.printer.Step(step)
		d.log.V(1).Info("running step", "step", step.Title())

		if err := d.runStep(ctx, step); err != nil {
			return d.store.State(), fmt.Errorf("%s: %w", step.Title(), err)
		}
		if step == onboarding.StepComplete {
			return d.store.State(), nil
		}
		if !d.store.CanProceed() {
			return d.store.State(), fmt.Errorf("%s: %w", step.Title(), ErrStepBlocked)
		}
		d.store.NextStep()
	}
}

func (d *Driver) runStep(ctx context.Context, step onboarding.Step) error {
	switch step {
	case onboarding.StepAuth:
		return d.authenticate(ctx)
	case onboarding.StepDetails:
		return d.details()
	case onboarding.StepTemplates:
		return d.templates()
	case onboarding.StepConfiguration:
		d.store.UpdateConfig(d.answers.ConfigPatch())
		d.printer.Configuration(d.store.State().Config)
		return nil
	case onboarding.StepReview:
		return d.reviewStep()
	case onboarding.StepProvisioning:
		return d.provision(ctx)
	case onboarding.StepComplete:
		st := d.store.State()
		if st.Completion != nil {
			d.printer.Completion(*st.Completion)
		}
		return nil
	default:
		return fmt.Errorf("unknown step %d", int(step))
	}
}

func (d *Driver) authenticate(ctx context.Context) error {
	p, err := d.auth.Authenticate(ctx, d.answers.ProviderID())
	if err != nil {
		return err
	}
	d.store.SetUser(p.User)
	d.printer.Info(identity.SuccessMessage(p))
	return nil
}

func (d *Driver) details() error {
	draft := d.answers.DetailsDraft()
	d.store.UpdateConfig(draft.Patch())
	if !draft.Valid() {
		d.printer.FieldErrors(draft)
		return ErrStepBlocked
	}
	d.printer.Project(d.store.State().Config)
	return nil
}

func (d *Driver) templates() error {
	selected, err := d.answers.SelectedTemplates()
	if err != nil {
		return err
	}
	d.store.UpdateTemplates(selected)
	d.printer.Templates(d.store.State().SelectedTemplates)
	return nil
}

func (d *Driver) reviewStep() error {
	st := d.store.State()
	results := onboarding.Review(st.Config, st.SelectedTemplates)
	d.store.UpdateValidationResults(results)
	if d.review != nil {
		d.review.ObserveReview(results)
	}
	d.printer.Findings(results)
	if d.store.State().HasErrors() {
		return ErrStepBlocked
	}
	return nil
}

func (d *Driver) provision(ctx context.Context) error {
	if d.store.State().IsComplete {
		d.printer.Provisioning(d.store.State().Provisioning)
		return nil
	}
	data, err := d.runner.Run(ctx, func(steps []onboarding.ProvisioningStep) {
		d.store.UpdateProvisioningSteps(steps)
		d.printer.Provisioning(steps)
	})
	if err != nil {
		return err
	}
	d.store.Complete(data)
	return nil
}
