package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/onboard/cmd/onboard/handlers"
)

// Validate returns the command that checks an answers file without running it.
func Validate() *cobra.Command {
	var answersPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check an answers file",
		Long: `Check an answers file against the project detail rules and the
review checks, without signing in or provisioning anything.

Exits non-zero when any error is found. Warnings are printed but
do not fail the check.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Validate(answersPath)
		},
	}

	cmd.Flags().StringVarP(&answersPath, "file", "f", "answers.yaml", "Path to answers file")

	return cmd
}
