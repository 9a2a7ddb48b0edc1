package api_test

import (
	"testing"

	"tether/internal/api"
	"tether/internal/diag"
	"tether/internal/linkage"
	"tether/internal/schema"
	"tether/internal/validate"
)

func TestRoot_Validates(t *testing.T) {
	bag := validate.Validate(api.Root(), validate.Options{})
	if bag.Len() != 0 {
		t.Fatalf("API schema has diagnostics:\n%s", diag.Format(bag, true))
	}
}

func TestRoot_SerialSymbols(t *testing.T) {
	reg, err := linkage.FromModule(api.Root())
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{
		"usr": "api.usb.serial.read",
		"usw": "api.usb.serial.write",
		"use": "api.usb.serial.register",
		"usd": "api.usb.serial.unregister",
		"usf": "api.usb.serial.flush",
	}
	if reg.Len() != len(want) {
		t.Fatalf("registry has %d symbols, want %d: %v", reg.Len(), len(want), reg.Symbols())
	}
	for sym, path := range want {
		got, ok := reg.Resolve(sym)
		if !ok {
			t.Errorf("symbol %q not bound", sym)
			continue
		}
		if got != path {
			t.Errorf("%q -> %q, want %q", sym, got, path)
		}
	}
}

func TestSerialEvents(t *testing.T) {
	ev := api.SerialEvents()
	if ev == nil {
		t.Fatal("usb.serial has no Event enum")
	}
	if len(ev.Variants) != 2 {
		t.Fatalf("variants = %d, want 2", len(ev.Variants))
	}
	if ev.Variants[0].Name != "Read" || ev.Variants[0].Value != 0 {
		t.Errorf("variant 0 = %s=%d, want Read=0", ev.Variants[0].Name, ev.Variants[0].Value)
	}
	if ev.Variants[1].Name != "Write" || ev.Variants[1].Value != 1 {
		t.Errorf("variant 1 = %s=%d, want Write=1", ev.Variants[1].Name, ev.Variants[1].Value)
	}
}

func TestSerial_ParameterShapes(t *testing.T) {
	root := api.Root()
	serial := root.Items[0].Mod.Items[0].Mod
	var read *schema.Function
	for _, it := range serial.Items {
		if it.Kind == schema.ItemFunction && it.Fn.Name == "read" {
			read = it.Fn
		}
	}
	if read == nil {
		t.Fatal("serial.read not declared")
	}
	if len(read.Params) != 2 {
		t.Fatalf("read has %d params, want 2", len(read.Params))
	}
	if read.Params[0].Type != schema.PtrMut {
		t.Errorf("read param 0 type = %s, want *mut u8", read.Params[0].Type)
	}
	if read.Params[1].Type != schema.USize {
		t.Errorf("read param 1 type = %s, want usize", read.Params[1].Type)
	}
	if len(read.Results) != 1 || read.Results[0].Type != schema.ISize {
		t.Errorf("read must return one isize")
	}
}
