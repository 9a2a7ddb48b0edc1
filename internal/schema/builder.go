package schema

import (
	"errors"
	"fmt"
)

// ErrMalformedField rejects a field whose declared width is not one of the
// supported primitive widths, or a pointer field without its length
// companion, or a callback handle outside a parameter list.
var ErrMalformedField = errors.New("malformed field")

// NewModule builds a module item. Children keep declaration order.
func NewModule(name string, docs Docs, items []Item) (*Module, error) {
	if name == "" {
		return nil, fmt.Errorf("module without a name")
	}
	return &Module{Name: name, Docs: docs, Items: items}, nil
}

// NewFunction builds a function item, checking every field shape eagerly so
// the tree never holds a partially well-formed function.
func NewFunction(name, symbol string, docs Docs, params, results []Field) (*Function, error) {
	if err := CheckFields(params, false); err != nil {
		return nil, fmt.Errorf("function %s params: %w", name, err)
	}
	if err := CheckFields(results, true); err != nil {
		return nil, fmt.Errorf("function %s results: %w", name, err)
	}
	return &Function{Name: name, Symbol: symbol, Docs: docs, Params: params, Results: results}, nil
}

// NewEnum builds an enumeration item.
func NewEnum(name string, docs Docs, variants []Variant) (*Enum, error) {
	if name == "" {
		return nil, fmt.Errorf("enum without a name")
	}
	return &Enum{Name: name, Docs: docs, Variants: variants}, nil
}

// CheckFields verifies one ordered field sequence.
func CheckFields(fields []Field, results bool) error {
	for i := range fields {
		if err := CheckField(fields, i, results); err != nil {
			return err
		}
	}
	return nil
}

// CheckField verifies the field at index i within its sequence. Results may
// not carry callback handles: a callback flows from guest to host on
// registration, never back.
func CheckField(fields []Field, i int, results bool) error {
	f := fields[i]
	switch f.Type.Kind {
	case TypeInt:
		if !f.Type.Width.Supported() {
			return fmt.Errorf("%w: field %q has unsupported width %d", ErrMalformedField, f.Name, f.Type.Width)
		}
	case TypePointer:
		if !HasLengthCompanion(fields, i) {
			return fmt.Errorf("%w: pointer field %q lacks a length companion", ErrMalformedField, f.Name)
		}
	case TypeHandle:
		if results {
			return fmt.Errorf("%w: callback handle %q not allowed in results", ErrMalformedField, f.Name)
		}
	default:
		return fmt.Errorf("%w: field %q has unknown type kind %d", ErrMalformedField, f.Name, f.Type.Kind)
	}
	return nil
}
