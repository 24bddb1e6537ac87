package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/onboard/internal/util/async"
)

// DefaultDelay is how long a simulated sign-in takes.
const DefaultDelay = 2 * time.Second

// Authenticator resolves a provider selection to a user after Delay.
type Authenticator struct {
	Delay time.Duration
}

// NewAuthenticator returns an Authenticator with the given delay.
func NewAuthenticator(delay time.Duration) *Authenticator {
	return &Authenticator{Delay: delay}
}

// Authenticate waits for the configured delay and returns the mock identity
// for providerID. The only error is the context error when ctx is cancelled
// first.
func (a *Authenticator) Authenticate(ctx context.Context, providerID string) (Provider, error) {
	log := logr.FromContextOrDiscard(ctx)
	p, known := Lookup(providerID)
	if !known {
		log.V(1).Info("unknown identity provider, using default", "requested", providerID, "provider", p.ID)
	}

	if err := async.Sleep(ctx, a.Delay); err != nil {
		return Provider{}, fmt.Errorf("authenticate via %s: %w", p.Name, err)
	}
	return p, nil
}

// SuccessMessage is the notice shown once authentication finished.
func SuccessMessage(p Provider) string {
	return fmt.Sprintf("Successfully authenticated via %s. Proceeding to project setup...", p.Name)
}
