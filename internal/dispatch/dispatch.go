// Package dispatch is the host-side sketch of what the dispatch generator
// consumes: a table mapping linkage symbols to handlers. Only symbols bound
// in the schema's linkage registry can be wired, so a host cannot silently
// export an operation the schema does not declare.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"tether/internal/contract"
	"tether/internal/linkage"
)

var (
	ErrUnknownSymbol = errors.New("symbol not declared in schema")
	ErrNotWired      = errors.New("symbol has no handler")
)

// Func implements one host operation. Args carry the raw parameter words in
// declaration order; buffer parameters arrive as (addr, len) pairs the
// handler must range-check via contract.Buffer before touching guest memory.
type Func func(ctx context.Context, args []uint64) contract.Result

// Table routes calls by linkage symbol.
type Table struct {
	mu    sync.RWMutex
	reg   *linkage.Registry
	funcs map[string]Func
}

func New(reg *linkage.Registry) *Table {
	return &Table{
		reg:   reg,
		funcs: make(map[string]Func),
	}
}

// Bind wires a handler to a declared symbol.
func (t *Table) Bind(symbol string, fn Func) error {
	if _, ok := t.reg.Resolve(symbol); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
	t.mu.Lock()
	t.funcs[symbol] = fn
	t.mu.Unlock()
	return nil
}

// Dispatch invokes the handler wired to symbol.
func (t *Table) Dispatch(ctx context.Context, symbol string, args []uint64) (contract.Result, error) {
	t.mu.RLock()
	fn, ok := t.funcs[symbol]
	t.mu.RUnlock()
	if !ok {
		if _, declared := t.reg.Resolve(symbol); !declared {
			return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
		}
		return 0, fmt.Errorf("%w: %q", ErrNotWired, symbol)
	}
	return fn(ctx, args), nil
}

// Wired returns the symbols that currently have handlers, in registry order.
func (t *Table) Wired() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var out []string
	for _, s := range t.reg.Symbols() {
		if _, ok := t.funcs[s]; ok {
			out = append(out, s)
		}
	}
	return out
}
