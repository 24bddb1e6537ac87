package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/onboard/internal/config"
	"github.com/imamik/onboard/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = wizard.FileExists

	// confirmOverwrite asks before replacing an existing file.
	confirmOverwrite = wizard.ConfirmOverwrite

	// runWizard runs the questionnaire.
	runWizard = wizard.RunWizard

	// writeAnswers writes the answers to a file.
	writeAnswers = wizard.WriteAnswers
)

// Init runs the questionnaire and writes the answers to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		ok, err := confirmOverwrite(outputPath)
		if err != nil {
			return fmt.Errorf("failed to confirm overwrite: %w", err)
		}
		if !ok {
			fmt.Println("Aborted. Existing file left unchanged.")
			return nil
		}
	}

	printWelcome()

	answers, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	if err := writeAnswers(answers, outputPath); err != nil {
		return fmt.Errorf("failed to write answers: %w", err)
	}

	printInitSuccess(outputPath, answers)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("onboard - Developer Onboarding")
	fmt.Println("==============================")
	fmt.Println()
	fmt.Println("This questionnaire records the answers for a headless onboarding run.")
	fmt.Println()
}

// printInitSuccess prints the saved file with a short summary and next steps.
func printInitSuccess(outputPath string, a *config.Answers) {
	fmt.Println()
	fmt.Println("Answers saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Project Summary")
	fmt.Println("---------------")
	fmt.Printf("  Name:        %s\n", a.Project.Name)
	fmt.Printf("  Type:        %s\n", a.Project.ProjectType)
	fmt.Printf("  Language:    %s\n", a.Project.Language)
	fmt.Printf("  Templates:   %d\n", len(a.Templates))
	fmt.Printf("  Environment: %s\n", a.Configuration.Environment)
	fmt.Println()

	fmt.Println("Next steps:")
	fmt.Printf("  1. Check the answers:  onboard validate -f %s\n", outputPath)
	fmt.Printf("  2. Run onboarding:     onboard apply -f %s\n", outputPath)
	fmt.Println()
}
