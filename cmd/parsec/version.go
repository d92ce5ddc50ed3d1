package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set by -ldflags "-X main.version=..." in release builds; it
// stays "dev" for local builds.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the parsec CLI version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "parsec %s\n", version)
		return nil
	},
}
