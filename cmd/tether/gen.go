package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"tether/internal/docgen"
	"tether/internal/export"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Validate, then write all generation artifacts",
	Long:  `Gen validates the schema once and, only if it is valid, writes the export payload and rendered documentation configured in tether.toml`,
	Args:  cobra.NoArgs,
	RunE:  runGen,
}

func runGen(cmd *cobra.Command, _ []string) error {
	// Validation is single-threaded and happens exactly once; only the
	// artifact writers fan out.
	root, err := loadValidatedRoot(cmd)
	if err != nil {
		return err
	}
	manifest, err := loadManifest(".")
	if err != nil {
		return err
	}

	exportPath := filepath.Join(manifest.Root, manifest.Config.Export.Out)
	docsPath := filepath.Join(manifest.Root, manifest.Config.Docs.Out)

	var digest export.Digest
	g, _ := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		d, err := export.Write(exportPath, root)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		digest = d
		return nil
	})
	g.Go(func() error {
		if err := os.MkdirAll(filepath.Dir(docsPath), 0o755); err != nil {
			return err
		}
		f, err := os.Create(docsPath)
		if err != nil {
			return err
		}
		if err := docgen.Markdown(f, root); err != nil {
			f.Close()
			return fmt.Errorf("docs rendering failed: %w", err)
		}
		return f.Close()
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if !quietFlag(cmd) {
		fmt.Fprintf(os.Stdout, "wrote %s (digest %s)\nwrote %s\n", exportPath, digest.Hex(), docsPath)
	}
	return nil
}
