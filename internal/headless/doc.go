// Package headless drives the onboarding state machine from an answers file
// without a terminal UI.
//
// The driver walks the same seven steps as the interactive wizard, through
// the same Store and proceed predicate, and prints progress as it goes. A
// step that cannot proceed stops the run with ErrStepBlocked.
package headless
