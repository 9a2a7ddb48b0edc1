// Package api holds the declarative description of every operation the host
// exposes to applets, one sub-package tree per peripheral. Each module is a
// plain literal: the shape mirrors what an author writes, and the validator
// is what turns the assembled tree into a trustworthy artifact.
package api

import "tether/internal/schema"

// Root assembles the full applet API tree. The root module owns the whole
// schema; generators receive it only after validation passed.
func Root() *schema.Module {
	return &schema.Module{
		Name: "api",
		Docs: schema.Docs{"Applet API."},
		Items: []schema.Item{
			usb(),
		},
	}
}
