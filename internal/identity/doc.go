// Package identity simulates the identity providers offered on the
// authentication screen.
//
// No protocol is spoken: each provider maps to a canonical mock user that is
// returned after a fixed delay.
package identity
