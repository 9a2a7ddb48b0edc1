package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadManifest_Defaults(t *testing.T) {
	m, err := loadManifest(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if m.Config.Export.Out != "build/api.schema" {
		t.Errorf("export out = %q", m.Config.Export.Out)
	}
	if m.Config.Lock.File != "tether.lock.toml" {
		t.Errorf("lock file = %q", m.Config.Lock.File)
	}
}

func TestLoadManifest_Parse(t *testing.T) {
	dir := t.TempDir()
	content := "[export]\nout = \"out/schema.bin\"\n\n[docs]\nout = \"out/ref.md\"\n"
	if err := os.WriteFile(filepath.Join(dir, "tether.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := loadManifest(dir)
	if err != nil {
		t.Fatal(err)
	}
	if m.Root != dir {
		t.Errorf("root = %q, want %q", m.Root, dir)
	}
	if m.Config.Export.Out != "out/schema.bin" {
		t.Errorf("export out = %q", m.Config.Export.Out)
	}
	if m.Config.Docs.Out != "out/ref.md" {
		t.Errorf("docs out = %q", m.Config.Docs.Out)
	}
	// Unset sections keep their defaults.
	if m.Config.Lock.File != "tether.lock.toml" {
		t.Errorf("lock file = %q", m.Config.Lock.File)
	}
}

func TestFindTetherToml_WalksUp(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tether.toml"), []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	path, ok, err := findTetherToml(nested)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if path != filepath.Join(dir, "tether.toml") {
		t.Errorf("path = %q", path)
	}
}
