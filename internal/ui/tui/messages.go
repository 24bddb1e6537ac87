// Package tui provides the Bubble Tea terminal wizard for developer onboarding.
package tui

import (
	"github.com/imamik/onboard/internal/identity"
	"github.com/imamik/onboard/internal/onboarding"
)

// TickMsg is sent periodically to animate spinners.
type TickMsg struct{}

// ErrMsg carries an error that ends the wizard.
type ErrMsg struct{ Err error }

// Messages produced by a mounted screen carry the generation of the mount
// that started them. The shell drops messages from earlier mounts.
type scoped interface {
	generation() int
}

// advanceMsg asks the shell to move forward on its own.
type advanceMsg struct{ gen int }

// authenticatedMsg reports the end of a sign-in attempt.
type authenticatedMsg struct {
	gen      int
	provider identity.Provider
	err      error
}

// provisioningMsg carries a provisioning snapshot.
type provisioningMsg struct {
	gen   int
	steps []onboarding.ProvisioningStep
}

// provisionedMsg reports the end of a provisioning run.
type provisionedMsg struct {
	gen  int
	data onboarding.CompletionData
	err  error
}

// copiedMsg reports a clipboard write.
type copiedMsg struct {
	gen   int
	index int
	err   error
}

// copyResetMsg clears a "copied" indicator.
type copyResetMsg struct {
	gen   int
	index int
	token int
}

func (m advanceMsg) generation() int       { return m.gen }
func (m authenticatedMsg) generation() int { return m.gen }
func (m provisioningMsg) generation() int  { return m.gen }
func (m provisionedMsg) generation() int   { return m.gen }
func (m copiedMsg) generation() int        { return m.gen }
func (m copyResetMsg) generation() int     { return m.gen }
