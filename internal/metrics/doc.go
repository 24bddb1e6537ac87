// Package metrics exposes Prometheus collectors for wizard sessions.
//
// A [Recorder] owns a private registry. It satisfies onboarding.Recorder for
// step transitions and provisioning.DurationRecorder for step timings, and
// can serve the registry over HTTP with [Serve].
package metrics
