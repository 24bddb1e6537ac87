// Package provisioning runs the simulated project setup sequence.
//
// # Core Types
//
// Context carries the step list being built, the observer and the snapshot
// callback. Phase defines one setup step with Name() and Provision() methods.
// Runner builds the six fixed phases, runs them in order with randomized
// delays and returns the completion payload.
//
// Nothing is actually created: every phase waits, records canned details and
// moves on. The only failure is cancellation of the run context.
package provisioning
