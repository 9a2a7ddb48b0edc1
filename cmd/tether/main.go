package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tether/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "tether",
	Short: "Applet API schema toolchain",
	Long:  `Tether validates the applet/host boundary schema and drives its generators`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(symbolsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(lockCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
