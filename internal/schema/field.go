package schema

// Field is one parameter or result of a function. Order within the owning
// sequence is significant.
type Field struct {
	Name string
	Docs Docs
	Type Type
}

// HasLengthCompanion reports whether the pointer field at index i is followed
// by its unsigned length field. Every buffer crosses the boundary as such a
// (pointer, length) pair; the pairing is what lets the host range-check the
// guest-supplied address.
func HasLengthCompanion(fields []Field, i int) bool {
	if i+1 >= len(fields) {
		return false
	}
	next := fields[i+1].Type
	return next.Kind == TypeInt && !next.Signed
}
