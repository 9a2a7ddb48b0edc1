// Package linkage owns the symbol table of the boundary: the short, stable
// identifiers functions are actually exported under. The symbol is the
// versioning seam of the ABI — changing one breaks deployed applets, while
// the descriptive name used in bindings and docs may change freely.
package linkage

import (
	"errors"
	"fmt"
	"sort"

	"tether/internal/schema"
)

var (
	ErrDuplicateSymbol = errors.New("duplicate linkage symbol")
	ErrBadSymbol       = errors.New("bad linkage symbol")
)

// MaxSymbolLen bounds the export name length. Symbols stay short on purpose:
// they are emitted verbatim into every applet binary.
const MaxSymbolLen = 4

// ValidSymbol reports whether s has the fixed symbol format:
// 1 to MaxSymbolLen characters from [a-z0-9_].
func ValidSymbol(s string) bool {
	if len(s) == 0 || len(s) > MaxSymbolLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return true
}

// Registry maps linkage symbols to the dotted paths of their functions.
// It is filled once from a validated schema and read by generators.
type Registry struct {
	bySymbol map[string]string
}

func NewRegistry() *Registry {
	return &Registry{bySymbol: make(map[string]string)}
}

// Bind assigns a symbol to a function path. Binding a taken symbol fails
// with ErrDuplicateSymbol; a malformed symbol fails with ErrBadSymbol.
func (r *Registry) Bind(symbol, fnPath string) error {
	if !ValidSymbol(symbol) {
		return fmt.Errorf("%w: %q", ErrBadSymbol, symbol)
	}
	if prev, ok := r.bySymbol[symbol]; ok {
		return fmt.Errorf("%w: %q bound to both %s and %s", ErrDuplicateSymbol, symbol, prev, fnPath)
	}
	r.bySymbol[symbol] = fnPath
	return nil
}

// Resolve returns the function path a symbol is bound to.
func (r *Registry) Resolve(symbol string) (string, bool) {
	path, ok := r.bySymbol[symbol]
	return path, ok
}

func (r *Registry) Len() int {
	return len(r.bySymbol)
}

// Symbols returns all bound symbols in sorted order.
func (r *Registry) Symbols() []string {
	syms := make([]string, 0, len(r.bySymbol))
	for s := range r.bySymbol {
		syms = append(syms, s)
	}
	sort.Strings(syms)
	return syms
}

// FromModule walks a schema tree and binds every function's symbol.
// The walk follows declaration order, so on conflict the second declaration
// loses, matching the validator's report.
func FromModule(root *schema.Module) (*Registry, error) {
	r := NewRegistry()
	if err := r.bindModule(root.Name, root); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Registry) bindModule(path string, m *schema.Module) error {
	for _, it := range m.Items {
		childPath := path + "." + it.Name()
		switch it.Kind {
		case schema.ItemModule:
			if err := r.bindModule(childPath, it.Mod); err != nil {
				return err
			}
		case schema.ItemFunction:
			if err := r.Bind(it.Fn.Symbol, childPath); err != nil {
				return err
			}
		}
	}
	return nil
}
