package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/onboard/cmd/onboard/handlers"
)

// Start returns the command that runs the interactive wizard.
func Start() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Run the interactive onboarding wizard",
		Long: `Run the interactive onboarding wizard in the terminal.

The wizard walks through seven steps:

  1. Sign in with an identity provider
  2. Project details
  3. Template selection
  4. Configuration (environment, data store, budget, compliance, tags)
  5. Review
  6. Provisioning
  7. Completion

Use ctrl+n and ctrl+p to move between steps. Provisioning and completion
advance on their own.

A terminal is required. For scripted runs, create an answers file with
'onboard init' and run 'onboard apply -f answers.yaml'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Start(cmd.Context(), globalOptions(cmd))
		},
	}
}
