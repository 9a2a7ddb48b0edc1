package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tether/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the validated schema artifact for generators",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringP("out", "o", "", "output path (default from tether.toml)")
}

func runExport(cmd *cobra.Command, _ []string) error {
	root, err := loadValidatedRoot(cmd)
	if err != nil {
		return err
	}

	outPath, _ := cmd.Flags().GetString("out")
	if outPath == "" {
		manifest, err := loadManifest(".")
		if err != nil {
			return err
		}
		outPath = filepath.Join(manifest.Root, manifest.Config.Export.Out)
	}

	digest, err := export.Write(outPath, root)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	if !quietFlag(cmd) {
		fmt.Fprintf(os.Stdout, "wrote %s (digest %s)\n", outPath, digest.Hex())
	}
	return nil
}
