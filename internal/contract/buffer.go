package contract

import "errors"

// ErrOutOfRange rejects a guest buffer that does not fit inside guest
// memory.
var ErrOutOfRange = errors.New("buffer outside guest memory")

// Buffer describes a contiguous region of guest memory, as carried across
// the boundary by a (pointer, length) field pair.
//
// Ownership never transfers: the applet keeps the buffer and guarantees its
// validity only for the duration of the one synchronous call it was passed
// to. The host must treat Addr as untrusted and range-check it before any
// access; the pairing with Len is what makes that check possible. The host
// holds no long-lived handle into guest memory — only a callback's opaque
// context may outlive a call.
type Buffer struct {
	Addr uint32
	Len  uint32
}

func (b Buffer) Empty() bool {
	return b.Len == 0
}

// Check range-checks the buffer against a guest memory of memSize bytes.
// An empty buffer passes regardless of its address: a zero-length read is a
// legal call.
func (b Buffer) Check(memSize uint32) error {
	if b.Len == 0 {
		return nil
	}
	end := uint64(b.Addr) + uint64(b.Len)
	if end > uint64(memSize) {
		return ErrOutOfRange
	}
	return nil
}
