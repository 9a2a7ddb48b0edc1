package docgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"tether/internal/schema"
)

var (
	moduleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	symbolStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	fnStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	typeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	docStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	variantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// Term renders the reference docs styled for a terminal of the given width.
func Term(w io.Writer, root *schema.Module, width int) error {
	if width <= 0 {
		width = 80
	}
	tw := &termWriter{w: w, width: width}
	tw.module(root.Name, root, 0)
	return tw.err
}

type termWriter struct {
	w     io.Writer
	width int
	err   error
}

func (tw *termWriter) printf(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format, args...)
}

func (tw *termWriter) module(path string, m *schema.Module, depth int) {
	pad := strings.Repeat("  ", depth)
	tw.printf("%s%s\n", pad, moduleStyle.Render(truncate(path, tw.width-len(pad))))
	tw.docLines(m.Docs, pad+"  ")
	for _, it := range m.Items {
		switch it.Kind {
		case schema.ItemModule:
			tw.printf("\n")
			tw.module(path+"."+it.Mod.Name, it.Mod, depth+1)
		case schema.ItemFunction:
			tw.function(it.Fn, depth+1)
		case schema.ItemEnum:
			tw.enum(it.Enum, depth+1)
		}
	}
}

func (tw *termWriter) function(fn *schema.Function, depth int) {
	pad := strings.Repeat("  ", depth)
	tw.printf("\n%s%s %s\n", pad, fnStyle.Render(fn.Name), symbolStyle.Render(fn.Symbol))
	tw.docLines(fn.Docs, pad+"  ")
	tw.fieldLines("->", fn.Params, pad+"  ")
	tw.fieldLines("<-", fn.Results, pad+"  ")
}

func (tw *termWriter) fieldLines(arrow string, fields []schema.Field, pad string) {
	for _, f := range fields {
		line := fmt.Sprintf("%s %s: %s", arrow, f.Name, typeStyle.Render(f.Type.String()))
		if !f.Docs.Empty() {
			line += "  " + docStyle.Render(truncate(f.Docs[0], tw.width-runewidth.StringWidth(line)-len(pad)))
		}
		tw.printf("%s%s\n", pad, line)
	}
}

func (tw *termWriter) enum(e *schema.Enum, depth int) {
	pad := strings.Repeat("  ", depth)
	tw.printf("\n%senum %s\n", pad, fnStyle.Render(e.Name))
	tw.docLines(e.Docs, pad+"  ")
	for _, v := range e.Variants {
		line := fmt.Sprintf("%s = %d", variantStyle.Render(v.Name), v.Value)
		if !v.Docs.Empty() {
			line += "  " + docStyle.Render(v.Docs[0])
		}
		tw.printf("%s%s\n", pad+"  ", line)
	}
}

func (tw *termWriter) docLines(docs schema.Docs, pad string) {
	for _, line := range docs {
		if line == "" {
			tw.printf("%s\n", pad)
			continue
		}
		tw.printf("%s%s\n", pad, docStyle.Render(truncate(line, tw.width-len(pad))))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
