package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/onboard/cmd/onboard/handlers"
)

// Init returns the command for interactively creating an answers file.
//
// Flags:
//
//	--output, -o: Path to output file (default "answers.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create an answers file",
		Long: `Interactively create an answers file for headless onboarding.

This command asks the same questions as the interactive wizard:

  - Identity provider
  - Project name, description, type, language and framework
  - Templates to provision
  - Environment, data store, budget, compliance and tags

The resulting file can be checked with 'onboard validate' and
applied with 'onboard apply'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "answers.yaml", "Output file path")

	return cmd
}
