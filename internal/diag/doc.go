// Package diag collects schema diagnostics.
//
// Diagnostics address schema items by dotted path (for example
// "usb.serial.read.ptr") instead of source spans: the schema is assembled
// from declarations in code, so there is no source text to point into.
// Output order is deterministic: bags are sorted and deduplicated before
// rendering, so identical input always yields an identical error set.
package diag
