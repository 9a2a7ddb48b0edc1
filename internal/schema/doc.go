// Package schema holds the declarative model of the applet/host boundary.
//
// The model is a tree of items (modules, functions, enumerations) rooted in a
// single module. It is assembled once per generation run from static
// declarations, validated as a batch, and handed to generators; nothing
// mutates an item after construction and nothing of this tree exists at
// runtime inside the deployed applet or host.
package schema
