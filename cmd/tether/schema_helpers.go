package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tether/internal/api"
	"tether/internal/diag"
	"tether/internal/schema"
	"tether/internal/validate"
)

// loadValidatedRoot assembles the schema tree and runs the validator.
// Diagnostics go to stderr; an invalid schema returns an error so that no
// command emits artifacts from it.
func loadValidatedRoot(cmd *cobra.Command) (*schema.Module, error) {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	root := api.Root()
	bag := validate.Validate(root, validate.Options{MaxDiagnostics: maxDiagnostics})
	if bag.Len() > 0 {
		fmt.Fprintln(os.Stderr, diag.Format(bag, true))
	}
	if bag.HasErrors() {
		return nil, fmt.Errorf("schema is invalid: %d diagnostics", bag.Len())
	}
	return root, nil
}

func quietFlag(cmd *cobra.Command) bool {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	return err == nil && quiet
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
