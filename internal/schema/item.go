package schema

// Docs is the documentation attached to a declaration, one line per entry.
// Lines are reproduced verbatim by the documentation renderer; an empty line
// separates paragraphs.
type Docs []string

func (d Docs) Empty() bool {
	for _, line := range d {
		if line != "" {
			return false
		}
	}
	return true
}

// ItemKind discriminates the payload of an Item.
type ItemKind uint8

const (
	ItemModule ItemKind = iota
	ItemFunction
	ItemEnum
)

func (k ItemKind) String() string {
	switch k {
	case ItemModule:
		return "module"
	case ItemFunction:
		return "function"
	case ItemEnum:
		return "enum"
	}
	return "unknown"
}

// Item is one node of the schema tree. Exactly the payload matching Kind is
// set; the others stay nil. Each item has exactly one owning parent module.
type Item struct {
	Kind ItemKind
	Mod  *Module
	Fn   *Function
	Enum *Enum
}

// Module owns an ordered sequence of child items.
type Module struct {
	Name  string
	Docs  Docs
	Items []Item
}

// Function declares one host-exposed operation. Symbol is the short linkage
// identifier the function is actually exported under; it is the ABI seam.
// Renaming Symbol breaks deployed applets, renaming Name does not.
// Parameter and result order is positional and fixes the calling-convention
// layout of generated bindings.
type Function struct {
	Name    string
	Symbol  string
	Docs    Docs
	Params  []Field
	Results []Field
}

// Enum declares a set of named integer values. Discriminants are explicit
// and stable: they are the literal wire values exchanged across the
// boundary, never recomputed by a consumer.
type Enum struct {
	Name     string
	Docs     Docs
	Variants []Variant
}

type Variant struct {
	Name  string
	Docs  Docs
	Value uint32
}

// Mod, Fn and En wrap a payload into an Item for use in declarations.
func Mod(m *Module) Item  { return Item{Kind: ItemModule, Mod: m} }
func Fn(f *Function) Item { return Item{Kind: ItemFunction, Fn: f} }
func En(e *Enum) Item     { return Item{Kind: ItemEnum, Enum: e} }

// Name returns the descriptive name of the item's payload.
func (it Item) Name() string {
	switch it.Kind {
	case ItemModule:
		return it.Mod.Name
	case ItemFunction:
		return it.Fn.Name
	case ItemEnum:
		return it.Enum.Name
	}
	return ""
}

// Documentation returns the docs of the item's payload.
func (it Item) Documentation() Docs {
	switch it.Kind {
	case ItemModule:
		return it.Mod.Docs
	case ItemFunction:
		return it.Fn.Docs
	case ItemEnum:
		return it.Enum.Docs
	}
	return nil
}
