package validate_test

import (
	"strings"
	"testing"

	"tether/internal/diag"
	"tether/internal/schema"
	"tether/internal/validate"
)

func docs(lines ...string) schema.Docs { return lines }

func bufferParams() []schema.Field {
	return []schema.Field{
		{Name: "ptr", Docs: docs("Address of the buffer."), Type: schema.PtrMut},
		{Name: "len", Docs: docs("Length of the buffer in bytes."), Type: schema.USize},
	}
}

func fn(name, symbol string) schema.Item {
	return schema.Fn(&schema.Function{
		Name:   name,
		Symbol: symbol,
		Docs:   docs("Does " + name + "."),
		Params: bufferParams(),
	})
}

func root(items ...schema.Item) *schema.Module {
	return &schema.Module{Name: "api", Docs: docs("Test API."), Items: items}
}

func codesOf(bag *diag.Bag) []diag.Code {
	var out []diag.Code
	for _, d := range bag.Items() {
		out = append(out, d.Code)
	}
	return out
}

func TestValidate_CleanSchema(t *testing.T) {
	bag := validate.Validate(root(fn("read", "usr"), fn("write", "usw")), validate.Options{})
	if bag.Len() != 0 {
		t.Fatalf("clean schema produced diagnostics:\n%s", diag.Format(bag, true))
	}
}

func TestValidate_DuplicateSymbol(t *testing.T) {
	bag := validate.Validate(root(fn("read", "usr"), fn("peek", "usr")), validate.Options{})
	if !bag.HasErrors() {
		t.Fatal("duplicate symbol not reported")
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.ValDuplicateSymbol {
			found = true
			if d.Path != "api.peek" {
				t.Errorf("reported at %q, want api.peek (second declaration)", d.Path)
			}
			if len(d.Notes) != 1 || d.Notes[0].Path != "api.read" {
				t.Errorf("note should point at first occurrence, got %+v", d.Notes)
			}
		}
	}
	if !found {
		t.Fatalf("no ValDuplicateSymbol in %v", codesOf(bag))
	}
}

func TestValidate_DuplicateSymbolAcrossModules(t *testing.T) {
	// The symbol namespace is global, not per module.
	inner := schema.Mod(&schema.Module{
		Name:  "inner",
		Docs:  docs("Inner."),
		Items: []schema.Item{fn("read", "usr")},
	})
	bag := validate.Validate(root(fn("read", "usr"), inner), validate.Options{})
	if !bag.HasErrors() {
		t.Fatal("cross-module duplicate symbol not reported")
	}
}

func TestValidate_DuplicateEventID(t *testing.T) {
	ev := schema.En(&schema.Enum{
		Name: "Event",
		Docs: docs("Events."),
		Variants: []schema.Variant{
			{Name: "Read", Docs: docs("Ready for read."), Value: 0},
			{Name: "Write", Docs: docs("Ready for write."), Value: 0},
		},
	})
	bag := validate.Validate(root(ev), validate.Options{})
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.ValDuplicateEventID && d.Path == "api.Event.Write" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ValDuplicateEventID at api.Event.Write, got %v", codesOf(bag))
	}
}

func TestValidate_MalformedField(t *testing.T) {
	broken := schema.Fn(&schema.Function{
		Name:   "read",
		Symbol: "usr",
		Docs:   docs("Reads."),
		Params: []schema.Field{{Name: "ptr", Type: schema.PtrMut}},
	})
	bag := validate.Validate(root(broken), validate.Options{})
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.ValMalformedField && d.Path == "api.read.ptr" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ValMalformedField at api.read.ptr, got %v", codesOf(bag))
	}
}

func TestValidate_MissingDocs(t *testing.T) {
	undocumented := schema.Fn(&schema.Function{Name: "flush", Symbol: "usf"})
	bag := validate.Validate(root(undocumented), validate.Options{})
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.ValMissingDocs && d.Path == "api.flush" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ValMissingDocs at api.flush, got %v", codesOf(bag))
	}
}

func TestValidate_BadSymbolWarning(t *testing.T) {
	bag := validate.Validate(root(fn("read", "TooLongSymbol")), validate.Options{})
	if bag.HasErrors() {
		t.Fatalf("symbol format is a warning, not an error:\n%s", diag.Format(bag, true))
	}
	if !bag.HasWarnings() {
		t.Fatal("expected a LinkBadSymbol warning")
	}
}

func TestValidate_Deterministic(t *testing.T) {
	build := func() *schema.Module {
		return root(
			fn("read", "usr"),
			fn("peek", "usr"),
			schema.Fn(&schema.Function{Name: "flush", Symbol: "usf"}),
		)
	}
	first := diag.Format(validate.Validate(build(), validate.Options{}), true)
	second := diag.Format(validate.Validate(build(), validate.Options{}), true)
	if first != second {
		t.Fatalf("validation is not deterministic:\n%s\n--- vs ---\n%s", first, second)
	}
	if !strings.Contains(first, "VAL2001") || !strings.Contains(first, "VAL2004") {
		t.Fatalf("expected both error kinds in:\n%s", first)
	}
}
