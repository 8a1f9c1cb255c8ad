package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ravyz/matcher/internal/matching"
)

// Actual version can be specified in build command.
var version = "unknown"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and the available scoring strategies",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s\n", app, version)
		fmt.Fprintf(cmd.OutOrStdout(), "strategies: %s\n", strings.Join(matching.Strategies(), ", "))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
