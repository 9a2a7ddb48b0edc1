package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tether/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run:   runVersion,
}

func runVersion(_ *cobra.Command, _ []string) {
	fmt.Fprintf(os.Stdout, "tether %s\n", version.Version)
	if version.GitCommit != "" {
		fmt.Fprintf(os.Stdout, "commit: %s\n", version.GitCommit)
	}
	if version.BuildDate != "" {
		fmt.Fprintf(os.Stdout, "built:  %s\n", version.BuildDate)
	}
}
