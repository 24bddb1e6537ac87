// Package async provides cancellable futures and scopes for delayed work.
//
// Every simulated delay in the wizard is a Future: authentication, the
// auto-advance timer, provisioning step waits and the clipboard feedback
// reset. Futures started through a Scope are cancelled together when the
// owning screen is torn down, so a late result never reaches a screen that
// is no longer mounted.
package async
