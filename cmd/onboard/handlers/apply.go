package handlers

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/imamik/onboard/internal/config"
	"github.com/imamik/onboard/internal/headless"
)

// ApplyOptions holds the apply command flags.
type ApplyOptions struct {
	AnswersPath string
	ReportPath  string
	Fast        bool
}

// Factory function variables for apply - can be replaced in tests.
var (
	// loadAnswers reads an answers file.
	loadAnswers = config.LoadAnswers

	// writeReport writes the session report.
	writeReport = config.WriteReport

	// now returns the report timestamp.
	now = time.Now
)

// Apply runs every onboarding step headless from an answers file.
func Apply(ctx context.Context, global GlobalOptions, opts ApplyOptions) error {
	answers, err := loadAnswers(opts.AnswersPath)
	if err != nil {
		return err
	}

	s, err := openSession(ctx, global, opts.Fast)
	if err != nil {
		return err
	}
	defer s.Close()

	s.log.Info("applying answers", "file", opts.AnswersPath)

	runner := s.runner(map[string]string{
		"mode":    "headless",
		"project": answers.Project.Name,
	})
	st, runErr := headless.Run(s.ctx, answers, s.store(), headless.Options{
		Authenticator: s.authenticator(),
		Runner:        runner,
		Review:        s.recorder,
		Out:           os.Stdout,
		Log:           s.log.WithName("headless"),
	})
	if runErr != nil {
		s.log.Error(runErr, "onboarding stopped")
	}

	// A report is written for failed runs too; it shows where the run stopped.
	if opts.ReportPath != "" {
		if err := writeReport(config.NewReport(s.id, st, now()), opts.ReportPath); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Printf("\nReport written to %s\n", opts.ReportPath)
	}

	if runErr != nil {
		return fmt.Errorf("onboarding failed: %w", runErr)
	}
	return nil
}
