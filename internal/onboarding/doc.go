// Package onboarding holds the wizard's domain model and its state container.
//
// The Store is the single owner of the onboarding State. Screens and the
// headless driver read snapshots via Store.State and write only through the
// Actions interface (UpdateConfig, UpdateTemplates, UpdateValidationResults,
// UpdateProvisioningSteps, SetUser, Complete). Navigation is driven by
// NextStep/PrevStep, gated by CanProceed.
//
// The package also carries the pure helpers each step needs: the template
// catalog and its filters, Project Details field validation, the
// Configuration draft, and the Review validation pass.
package onboarding
