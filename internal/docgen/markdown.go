// Package docgen renders reference documentation from a validated schema
// tree. Doc text is reproduced verbatim, line for line; the renderer adds
// structure (headings, field lists) and nothing else.
package docgen

import (
	"fmt"
	"io"
	"strings"

	"tether/internal/schema"
)

// Markdown writes the reference documentation for the tree rooted at root.
func Markdown(w io.Writer, root *schema.Module) error {
	mw := &mdWriter{w: w}
	mw.module(root.Name, root, 1)
	return mw.err
}

type mdWriter struct {
	w    io.Writer
	err  error
	some bool
}

func (mw *mdWriter) printf(format string, args ...any) {
	if mw.err != nil {
		return
	}
	_, mw.err = fmt.Fprintf(mw.w, format, args...)
}

func (mw *mdWriter) module(path string, m *schema.Module, depth int) {
	if mw.some {
		mw.printf("\n")
	}
	mw.some = true
	mw.printf("%s %s\n", heading(depth), path)
	mw.docs(m.Docs, "")
	for _, it := range m.Items {
		switch it.Kind {
		case schema.ItemModule:
			mw.module(path+"."+it.Mod.Name, it.Mod, depth+1)
		case schema.ItemFunction:
			mw.function(it.Fn, depth+1)
		case schema.ItemEnum:
			mw.enum(it.Enum, depth+1)
		}
	}
}

func (mw *mdWriter) function(fn *schema.Function, depth int) {
	mw.printf("\n%s %s `%s`\n", heading(depth), fn.Name, fn.Symbol)
	mw.docs(fn.Docs, "")
	mw.fields("Parameters", fn.Params)
	mw.fields("Results", fn.Results)
}

func (mw *mdWriter) fields(label string, fields []schema.Field) {
	if len(fields) == 0 {
		return
	}
	mw.printf("\n%s:\n\n", label)
	for _, f := range fields {
		mw.printf("- `%s` (`%s`)", f.Name, f.Type)
		if f.Docs.Empty() {
			mw.printf("\n")
			continue
		}
		mw.printf(": %s\n", f.Docs[0])
		mw.docs(f.Docs[1:], "  ")
	}
}

func (mw *mdWriter) enum(e *schema.Enum, depth int) {
	mw.printf("\n%s enum %s\n", heading(depth), e.Name)
	mw.docs(e.Docs, "")
	mw.printf("\n")
	for _, v := range e.Variants {
		mw.printf("- `%s` = %d", v.Name, v.Value)
		if v.Docs.Empty() {
			mw.printf("\n")
			continue
		}
		mw.printf(": %s\n", v.Docs[0])
		mw.docs(v.Docs[1:], "  ")
	}
}

// docs reproduces doc lines verbatim, prefixing continuation lines so they
// stay attached to their list entry when indent is non-empty.
func (mw *mdWriter) docs(docs schema.Docs, indent string) {
	if docs.Empty() {
		return
	}
	if indent == "" {
		mw.printf("\n")
	}
	for _, line := range docs {
		if line == "" {
			mw.printf("%s\n", indent)
			continue
		}
		mw.printf("%s%s\n", indent, line)
	}
}

func heading(depth int) string {
	if depth > 6 {
		depth = 6
	}
	return strings.Repeat("#", depth)
}
