package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/onboard/cmd/onboard/handlers"
	"github.com/imamik/onboard/internal/onboarding"
)

// Catalog returns the command that lists the template catalog.
func Catalog() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List available templates",
		Long: `List the infrastructure and repository templates that can be
selected during onboarding, with their resources and estimated
provisioning time.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Catalog(onboarding.TemplateFilter(filter))
		},
	}

	cmd.Flags().StringVarP(&filter, "type", "t", string(onboarding.FilterAll), "Template type: all, infrastructure or repository")

	return cmd
}
