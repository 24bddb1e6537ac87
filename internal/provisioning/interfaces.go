package provisioning

import "time"

// Phase defines the interface for a provisioning phase.
type Phase interface {
	// Name returns the human-readable name of this phase.
	Name() string

	// Provision executes the phase against the shared run context.
	Provision(ctx *Context) error
}

// DurationRecorder receives the wall time of every completed step.
// Implemented by internal/metrics.Recorder.
type DurationRecorder interface {
	ObserveProvisioningStep(id string, d time.Duration)
}

type nopDurations struct{}

func (nopDurations) ObserveProvisioningStep(string, time.Duration) {}
