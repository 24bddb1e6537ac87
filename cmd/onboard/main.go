// Package main is the entry point for the onboard CLI.
//
// onboard walks a developer through project onboarding: sign-in, project
// details, template selection, configuration, review and a simulated
// provisioning run. It runs interactively in a terminal, or headless from a
// saved answers file.
//
// Commands: start, init, apply, validate, catalog.
//
// For detailed usage information, run:
//
//	onboard --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/onboard/cmd/onboard/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
