package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/imamik/onboard/internal/onboarding"
)

const namespace = "onboard"

// Recorder records wizard metrics into its own registry.
type Recorder struct {
	registry *prometheus.Registry

	stepEntries        *prometheus.CounterVec
	authentications    *prometheus.CounterVec
	sessionsCompleted  prometheus.Counter
	currentStep        prometheus.Gauge
	provisioningStep   *prometheus.HistogramVec
	validationFindings *prometheus.CounterVec
}

var (
	_ onboarding.Recorder = (*Recorder)(nil)
)

// NewRecorder creates a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		stepEntries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "wizard",
				Name:      "step_entries_total",
				Help:      "Total number of times each wizard step was entered",
			},
			[]string{"step"},
		),
		authentications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "wizard",
				Name:      "authentications_total",
				Help:      "Total number of simulated sign-ins by identity provider",
			},
			[]string{"provider"},
		),
		sessionsCompleted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "wizard",
				Name:      "sessions_completed_total",
				Help:      "Total number of sessions that reached completion",
			},
		),
		currentStep: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "wizard",
				Name:      "current_step",
				Help:      "Index of the step currently shown",
			},
		),
		provisioningStep: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "provisioning",
				Name:      "step_duration_seconds",
				Help:      "Duration of simulated provisioning steps in seconds",
				Buckets:   prometheus.LinearBuckets(0.5, 0.5, 10), // 0.5s to 5s
			},
			[]string{"step"},
		),
		validationFindings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "review",
				Name:      "findings_total",
				Help:      "Total number of review findings by field and severity",
			},
			[]string{"field", "type"},
		),
	}

	r.registry.MustRegister(
		r.stepEntries,
		r.authentications,
		r.sessionsCompleted,
		r.currentStep,
		r.provisioningStep,
		r.validationFindings,
	)
	return r
}

// Registry returns the registry holding every collector.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// StepEntered implements onboarding.Recorder.
func (r *Recorder) StepEntered(step onboarding.Step) {
	r.stepEntries.WithLabelValues(step.Title()).Inc()
	r.currentStep.Set(float64(step))
}

// UserAuthenticated implements onboarding.Recorder.
func (r *Recorder) UserAuthenticated(provider string) {
	r.authentications.WithLabelValues(provider).Inc()
}

// SessionCompleted implements onboarding.Recorder.
func (r *Recorder) SessionCompleted() {
	r.sessionsCompleted.Inc()
}

// ObserveProvisioningStep records the duration of one provisioning step.
func (r *Recorder) ObserveProvisioningStep(id string, d time.Duration) {
	r.provisioningStep.WithLabelValues(id).Observe(d.Seconds())
}

// ObserveReview counts the findings of one review run.
func (r *Recorder) ObserveReview(results []onboarding.ValidationResult) {
	for _, res := range results {
		r.validationFindings.WithLabelValues(res.Field, string(res.Type)).Inc()
	}
}
