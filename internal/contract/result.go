package contract

// Result is the signed outcome word of a boundary call.
//
// Zero or any positive value is a successful outcome; a negative value
// signals an error. Zero itself is a legitimate success — for the
// non-blocking read/write operations it means "no data available right now",
// not failure. Consumers must never treat zero as an error.
//
// The schema defines no structured error enumeration on top of this: each
// function's documentation is authoritative for what its negative values
// mean.
type Result int32

func (r Result) Ok() bool {
	return r >= 0
}

func (r Result) Failed() bool {
	return r < 0
}
