package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/onboard/cmd/onboard/handlers"
)

// Apply returns the command that runs onboarding headless from an answers file.
//
// Flags:
//
//	--file, -f: Answers file (default "answers.yaml")
//	--report: Write a session report to this path
//	--fast: Skip every simulated delay
func Apply() *cobra.Command {
	var opts handlers.ApplyOptions

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Run onboarding from an answers file",
		Long: `Run every onboarding step without a terminal UI.

Each step is filled from the answers file and checked exactly as the
interactive wizard would. The run stops at the first step that cannot
proceed and reports why.

Use --report to keep a YAML record of the finished session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Apply(cmd.Context(), globalOptions(cmd), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.AnswersPath, "file", "f", "answers.yaml", "Path to answers file")
	cmd.Flags().StringVar(&opts.ReportPath, "report", "", "Write a session report to this path")
	cmd.Flags().BoolVar(&opts.Fast, "fast", false, "Skip simulated delays")

	return cmd
}
