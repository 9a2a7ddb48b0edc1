// Package validate walks an assembled schema tree once and enforces the
// invariants generators rely on: globally unique linkage symbols, unique
// event discriminants, well-formed fields and documented items.
//
// Validation is pure and deterministic. The walk follows declaration order,
// and the resulting bag is sorted and deduplicated on rendering, so identical
// input always yields the identical error set. A schema that fails
// validation must not reach any generator.
package validate

import (
	"fmt"

	"tether/internal/diag"
	"tether/internal/linkage"
	"tether/internal/schema"
)

const DefaultMaxDiagnostics = 100

type Options struct {
	// MaxDiagnostics caps the bag; zero means DefaultMaxDiagnostics.
	MaxDiagnostics int
}

// Validate checks the whole tree rooted at root and returns the collected
// diagnostics. The tree itself is never modified.
func Validate(root *schema.Module, opts Options) *diag.Bag {
	maxDiags := opts.MaxDiagnostics
	if maxDiags <= 0 {
		maxDiags = DefaultMaxDiagnostics
	}
	w := &walker{
		bag:     diag.NewBag(maxDiags),
		symbols: make(map[string]string),
	}
	w.module(root.Name, root)
	return w.bag
}

type walker struct {
	bag *diag.Bag
	// symbols maps each linkage symbol to the path of its first owner.
	symbols map[string]string
}

func (w *walker) module(path string, m *schema.Module) {
	w.docs(path, m.Docs, "module")
	for _, it := range m.Items {
		childPath := path + "." + it.Name()
		switch it.Kind {
		case schema.ItemModule:
			w.module(childPath, it.Mod)
		case schema.ItemFunction:
			w.function(childPath, it.Fn)
		case schema.ItemEnum:
			w.enum(childPath, it.Enum)
		}
	}
}

func (w *walker) function(path string, fn *schema.Function) {
	w.docs(path, fn.Docs, "function")

	if first, dup := w.symbols[fn.Symbol]; dup {
		w.bag.Add(diag.NewError(diag.ValDuplicateSymbol, path,
			fmt.Sprintf("linkage symbol %q already taken", fn.Symbol)).
			WithNote(first, "first bound here"))
	} else {
		w.symbols[fn.Symbol] = path
	}
	if !linkage.ValidSymbol(fn.Symbol) {
		w.bag.Add(diag.NewWarning(diag.LinkBadSymbol, path,
			fmt.Sprintf("linkage symbol %q is not short lowercase", fn.Symbol)))
	}

	w.fields(path, fn.Params, false)
	w.fields(path, fn.Results, true)
}

func (w *walker) fields(fnPath string, fields []schema.Field, results bool) {
	for i := range fields {
		if err := schema.CheckField(fields, i, results); err != nil {
			w.bag.Add(diag.NewError(diag.ValMalformedField,
				fnPath+"."+fields[i].Name, err.Error()))
		}
	}
}

func (w *walker) enum(path string, e *schema.Enum) {
	w.docs(path, e.Docs, "enum")

	// Discriminants are the literal wire values a guest may pass to
	// register/unregister; two variants sharing one would make the legal
	// event set ambiguous.
	first := make(map[uint32]string, len(e.Variants))
	for _, v := range e.Variants {
		vPath := path + "." + v.Name
		if prev, dup := first[v.Value]; dup {
			w.bag.Add(diag.NewError(diag.ValDuplicateEventID, vPath,
				fmt.Sprintf("discriminant %d already used", v.Value)).
				WithNote(prev, "first declared here"))
			continue
		}
		first[v.Value] = vPath
	}
}

func (w *walker) docs(path string, docs schema.Docs, kind string) {
	if docs.Empty() {
		w.bag.Add(diag.NewError(diag.ValMissingDocs, path,
			kind+" has no documentation"))
	}
}
