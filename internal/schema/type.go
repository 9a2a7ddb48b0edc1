package schema

// TypeKind discriminates the shapes a field can take at the call boundary.
type TypeKind uint8

const (
	// TypeInt is a fixed-width or word-sized integer.
	TypeInt TypeKind = iota
	// TypePointer is a raw address into guest memory. A pointer field is
	// always paired with an unsigned length field directly after it.
	TypePointer
	// TypeHandle is a callback handle: a function pointer together with an
	// opaque guest-owned context word. The host never inspects the context;
	// it hands it back verbatim on every invocation.
	TypeHandle
)

// Width is an integer bit width. WWord stands for the target word size
// (usize/isize on the guest side).
type Width uint8

const (
	WWord Width = 0
	W8    Width = 8
	W16   Width = 16
	W32   Width = 32
	W64   Width = 64
)

func (w Width) Supported() bool {
	switch w {
	case WWord, W8, W16, W32, W64:
		return true
	}
	return false
}

// Type describes the shape of one field. Width and Signed apply to TypeInt,
// Mutable applies to TypePointer; the remaining combinations are zero.
type Type struct {
	Kind    TypeKind
	Width   Width
	Signed  bool
	Mutable bool
}

// Common field types as they appear in declarations.
var (
	U8    = Type{Kind: TypeInt, Width: W8}
	U16   = Type{Kind: TypeInt, Width: W16}
	U32   = Type{Kind: TypeInt, Width: W32}
	U64   = Type{Kind: TypeInt, Width: W64}
	I8    = Type{Kind: TypeInt, Width: W8, Signed: true}
	I16   = Type{Kind: TypeInt, Width: W16, Signed: true}
	I32   = Type{Kind: TypeInt, Width: W32, Signed: true}
	I64   = Type{Kind: TypeInt, Width: W64, Signed: true}
	USize = Type{Kind: TypeInt, Width: WWord}
	ISize = Type{Kind: TypeInt, Width: WWord, Signed: true}

	// PtrMut is a pointer the host may write through, PtrConst one it may
	// only read through. Both address untrusted guest memory.
	PtrMut   = Type{Kind: TypePointer, Mutable: true}
	PtrConst = Type{Kind: TypePointer}

	// Callback is the handle type for register-style operations.
	Callback = Type{Kind: TypeHandle}
)

// String renders the type the way declarations spell it.
func (t Type) String() string {
	switch t.Kind {
	case TypePointer:
		if t.Mutable {
			return "*mut u8"
		}
		return "*const u8"
	case TypeHandle:
		return "callback"
	}
	if t.Width == WWord {
		if t.Signed {
			return "isize"
		}
		return "usize"
	}
	prefix := "u"
	if t.Signed {
		prefix = "i"
	}
	switch t.Width {
	case W8:
		return prefix + "8"
	case W16:
		return prefix + "16"
	case W32:
		return prefix + "32"
	case W64:
		return prefix + "64"
	}
	return "invalid"
}
