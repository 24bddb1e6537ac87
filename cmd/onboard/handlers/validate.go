package handlers

import (
	"errors"
	"os"

	"github.com/imamik/onboard/internal/headless"
)

// ErrValidationFailed is returned when an answers file would block a run.
var ErrValidationFailed = errors.New("answers file has errors")

// Validate checks an answers file and prints the findings.
func Validate(answersPath string) error {
	answers, err := loadAnswers(answersPath)
	if err != nil {
		return err
	}

	result, err := headless.Check(answers)
	if err != nil {
		return err
	}

	headless.NewPrinter(os.Stdout).PrintCheck(result)

	if !result.OK() {
		return ErrValidationFailed
	}
	return nil
}
