package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tether/internal/docgen"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Render reference documentation from the schema",
	Args:  cobra.NoArgs,
	RunE:  runDocs,
}

func init() {
	docsCmd.Flags().String("format", "md", "output format (md|term)")
	docsCmd.Flags().StringP("out", "o", "", "write to file instead of stdout")
}

func runDocs(cmd *cobra.Command, _ []string) error {
	root, err := loadValidatedRoot(cmd)
	if err != nil {
		return err
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	outPath, _ := cmd.Flags().GetString("out")

	out := os.Stdout
	if outPath != "" {
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return err
		}
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "md":
		return docgen.Markdown(out, root)
	case "term":
		width := 80
		if isTerminal(out) {
			if w, _, err := term.GetSize(int(out.Fd())); err == nil && w > 0 {
				width = w
			}
		}
		return docgen.Term(out, root, width)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
