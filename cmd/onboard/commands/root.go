// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/onboard/cmd/onboard/handlers"
)

// Root returns the root command for the onboard CLI.
//
// The root command owns the persistent flags shared by every session
// command: the settings file, the log destination and the metrics listener.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "onboard",
		Short:         "Guided developer onboarding",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "Settings file (YAML, JSON or TOML)")
	cmd.PersistentFlags().String("log-file", "", "Write JSON logs to this file")
	cmd.PersistentFlags().IntP("verbosity", "v", 0, "Log verbosity level")
	cmd.PersistentFlags().String("metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090")

	// Session commands
	cmd.AddCommand(Start())
	cmd.AddCommand(Init())
	cmd.AddCommand(Apply())
	cmd.AddCommand(Validate())

	// Utility commands
	cmd.AddCommand(Catalog())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}

// globalOptions reads the persistent flags after parsing.
func globalOptions(cmd *cobra.Command) handlers.GlobalOptions {
	path, _ := cmd.Flags().GetString("config")
	return handlers.GlobalOptions{
		ConfigPath: path,
		Flags:      cmd.Flags(),
	}
}
