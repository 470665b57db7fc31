package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of pipeline-core",
	Run: func(cmd *cobra.Command, args []string) {
		// Write through the command so the host application (and tests)
		// can redirect the output stream.
		fmt.Fprintf(cmd.OutOrStdout(), "pipeline-core %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
