package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tether/internal/linkage"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the schema tree",
	Long:  `Validate walks the assembled schema and reports duplicate symbols, duplicate event discriminants, malformed fields and missing documentation`,
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, _ []string) error {
	root, err := loadValidatedRoot(cmd)
	if err != nil {
		return err
	}
	reg, err := linkage.FromModule(root)
	if err != nil {
		return err
	}
	if !quietFlag(cmd) {
		fmt.Fprintf(os.Stdout, "schema %s is valid: %d linkage symbols\n", root.Name, reg.Len())
	}
	return nil
}
