package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// tether.toml configures artifact locations. Every entry has a default, so
// a missing manifest is fine; commands also accept flags that win over the
// manifest.

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Export exportConfig `toml:"export"`
	Docs   docsConfig   `toml:"docs"`
	Lock   lockConfig   `toml:"lock"`
}

type exportConfig struct {
	Out string `toml:"out"`
}

type docsConfig struct {
	Out string `toml:"out"`
}

type lockConfig struct {
	File string `toml:"file"`
}

func defaultConfig() projectConfig {
	return projectConfig{
		Export: exportConfig{Out: "build/api.schema"},
		Docs:   docsConfig{Out: "build/api.md"},
		Lock:   lockConfig{File: "tether.lock.toml"},
	}
}

func findTetherToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "tether.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadManifest finds and parses tether.toml, falling back to defaults when
// no manifest exists. Unset entries keep their defaults too.
func loadManifest(startDir string) (*projectManifest, error) {
	cfg := defaultConfig()
	path, ok, err := findTetherToml(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &projectManifest{Root: ".", Config: cfg}, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if cfg.Export.Out == "" {
		cfg.Export.Out = defaultConfig().Export.Out
	}
	if cfg.Docs.Out == "" {
		cfg.Docs.Out = defaultConfig().Docs.Out
	}
	if cfg.Lock.File == "" {
		cfg.Lock.File = defaultConfig().Lock.File
	}
	return &projectManifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, nil
}
