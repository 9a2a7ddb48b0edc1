// Package contract fixes the meaning of each field type at the call
// boundary: how buffers, opaque callback contexts and numeric results behave
// when a call crosses from sandboxed applet to trusted host.
//
// The rules here are normative for both sides. The schema describes shapes;
// this package describes what the shapes mean, and provides the small
// helpers hosts use to honor them.
package contract
