package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tether/internal/linkage"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "List the linkage symbol table",
	Args:  cobra.NoArgs,
	RunE:  runSymbols,
}

func runSymbols(cmd *cobra.Command, _ []string) error {
	root, err := loadValidatedRoot(cmd)
	if err != nil {
		return err
	}
	reg, err := linkage.FromModule(root)
	if err != nil {
		return err
	}

	symColor := color.New(color.FgYellow, color.Bold)
	symColor.DisableColor()
	if useColor(cmd, os.Stdout) {
		symColor.EnableColor()
	}

	for _, sym := range reg.Symbols() {
		path, _ := reg.Resolve(sym)
		fmt.Fprintf(os.Stdout, "%-4s  %s\n", symColor.Sprint(sym), path)
	}
	return nil
}
