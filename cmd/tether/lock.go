package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tether/internal/export"
	"tether/internal/linkage"
)

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Freeze or check the ABI symbol table",
	Long: `Lock writes the current linkage symbol table to the lock file.
With --check it instead compares the schema against the committed lock and
fails on ABI-breaking changes (removed or retargeted symbols).`,
	Args: cobra.NoArgs,
	RunE: runLock,
}

func init() {
	lockCmd.Flags().Bool("check", false, "compare against the existing lock instead of rewriting it")
	lockCmd.Flags().String("file", "", "lock file path (default from tether.toml)")
}

func runLock(cmd *cobra.Command, _ []string) error {
	root, err := loadValidatedRoot(cmd)
	if err != nil {
		return err
	}
	reg, err := linkage.FromModule(root)
	if err != nil {
		return err
	}

	lockPath, _ := cmd.Flags().GetString("file")
	if lockPath == "" {
		manifest, err := loadManifest(".")
		if err != nil {
			return err
		}
		lockPath = filepath.Join(manifest.Root, manifest.Config.Lock.File)
	}

	_, digest, err := export.Encode(root)
	if err != nil {
		return err
	}
	cur := reg.Snapshot(digest.Hex())

	check, _ := cmd.Flags().GetBool("check")
	if !check {
		if err := linkage.WriteLock(lockPath, cur); err != nil {
			return fmt.Errorf("failed to write lock: %w", err)
		}
		if !quietFlag(cmd) {
			fmt.Fprintf(os.Stdout, "wrote %s (%d symbols)\n", lockPath, reg.Len())
		}
		return nil
	}

	old, ok, err := linkage.ReadLock(lockPath)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no lock file at %s; run \"tether lock\" first", lockPath)
	}

	changes := linkage.DiffLocks(old, cur)
	for _, c := range changes {
		fmt.Fprintf(os.Stderr, "%s %s: %s\n", c.Kind, c.Symbol, describeChange(c))
	}
	if breaking := linkage.Breaking(changes); len(breaking) > 0 {
		return fmt.Errorf("%d ABI-breaking changes against %s", len(breaking), lockPath)
	}
	if !quietFlag(cmd) {
		fmt.Fprintf(os.Stdout, "ABI unchanged against %s\n", lockPath)
	}
	return nil
}

func describeChange(c linkage.Change) string {
	switch c.Kind {
	case linkage.ChangeRenamed:
		return fmt.Sprintf("%s was %s", c.Path, c.OldPath)
	case linkage.ChangeRetargeted:
		return fmt.Sprintf("%s moved from symbol %q", c.Path, c.OldSymbol)
	default:
		return c.Path
	}
}
