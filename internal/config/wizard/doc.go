// Package wizard provides the interactive questionnaire behind `onboard init`.
//
// It uses charmbracelet/huh forms to collect the same inputs as the wizard
// screens and produces a [config.Answers] document. Use WriteAnswers to
// generate the YAML output file consumed by `onboard apply`.
package wizard
