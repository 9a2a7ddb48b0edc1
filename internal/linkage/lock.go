package linkage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
)

// Current lock format version - increment when the Lock layout changes.
const lockVersion uint16 = 1

// Lock freezes the symbol table of a validated schema on disk. Comparing a
// fresh registry against a committed lock is how ABI breaks are caught
// before release: a removed or retargeted symbol is breaking, a function
// rename under a stable symbol is not.
type Lock struct {
	Version uint16            `toml:"version"`
	Digest  string            `toml:"digest,omitempty"`
	Symbols map[string]string `toml:"symbols"`
}

// Snapshot captures the registry into a lock. Digest is the hex digest of
// the schema export this table was produced from (may be empty).
func (r *Registry) Snapshot(digest string) Lock {
	syms := make(map[string]string, len(r.bySymbol))
	for s, path := range r.bySymbol {
		syms[s] = path
	}
	return Lock{Version: lockVersion, Digest: digest, Symbols: syms}
}

// WriteLock writes the lock atomically (temp file + rename).
func WriteLock(path string, l Lock) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tmp-lock-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	enc := toml.NewEncoder(f)
	if err := enc.Encode(l); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// ReadLock loads a lock file. The second result is false when no lock
// exists yet, which is not an error.
func ReadLock(path string) (Lock, bool, error) {
	var l Lock
	if _, err := toml.DecodeFile(path, &l); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Lock{}, false, nil
		}
		return Lock{}, false, fmt.Errorf("%s: failed to parse lock: %w", path, err)
	}
	if l.Version != lockVersion {
		return Lock{}, false, fmt.Errorf("%s: unsupported lock version %d", path, l.Version)
	}
	return l, true, nil
}

// ChangeKind classifies one symbol-table difference.
type ChangeKind uint8

const (
	// ChangeAdded is a new symbol; old applets are unaffected.
	ChangeAdded ChangeKind = iota
	// ChangeRemoved means applets linked against the symbol no longer
	// resolve. Breaking.
	ChangeRemoved
	// ChangeRetargeted means the function kept its descriptive path but now
	// exports under a different symbol. Breaking.
	ChangeRetargeted
	// ChangeRenamed means the symbol is stable and only the descriptive
	// path changed. Bindings and docs change, the ABI does not.
	ChangeRenamed
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeAdded:
		return "added"
	case ChangeRemoved:
		return "removed"
	case ChangeRetargeted:
		return "retargeted"
	case ChangeRenamed:
		return "renamed"
	}
	return "unknown"
}

func (k ChangeKind) Breaking() bool {
	return k == ChangeRemoved || k == ChangeRetargeted
}

type Change struct {
	Kind   ChangeKind
	Symbol string
	// Path is the function path involved; for ChangeRenamed it is the new
	// path, for ChangeRemoved the old one.
	Path string
	// OldSymbol is set for ChangeRetargeted, OldPath for ChangeRenamed.
	OldSymbol string
	OldPath   string
}

// DiffLocks compares two symbol tables and returns the changes in sorted
// symbol order.
func DiffLocks(old, cur Lock) []Change {
	// Index the new table by path to tell a retarget from a plain removal.
	curByPath := make(map[string]string, len(cur.Symbols))
	for sym, path := range cur.Symbols {
		curByPath[path] = sym
	}

	var changes []Change
	for sym, oldPath := range old.Symbols {
		curPath, ok := cur.Symbols[sym]
		switch {
		case ok && curPath == oldPath:
			// unchanged
		case ok:
			changes = append(changes, Change{Kind: ChangeRenamed, Symbol: sym, Path: curPath, OldPath: oldPath})
		default:
			if newSym, moved := curByPath[oldPath]; moved {
				changes = append(changes, Change{Kind: ChangeRetargeted, Symbol: newSym, Path: oldPath, OldSymbol: sym})
			} else {
				changes = append(changes, Change{Kind: ChangeRemoved, Symbol: sym, Path: oldPath})
			}
		}
	}
	for sym, path := range cur.Symbols {
		if _, existed := old.Symbols[sym]; existed {
			continue
		}
		// A retargeted function already produced a change above.
		if oldSym, moved := oldSymbolForPath(old, path); moved && oldSym != sym {
			continue
		}
		changes = append(changes, Change{Kind: ChangeAdded, Symbol: sym, Path: path})
	}

	sort.Slice(changes, func(i, j int) bool {
		if changes[i].Symbol != changes[j].Symbol {
			return changes[i].Symbol < changes[j].Symbol
		}
		return changes[i].Kind < changes[j].Kind
	})
	return changes
}

func oldSymbolForPath(old Lock, path string) (string, bool) {
	for sym, p := range old.Symbols {
		if p == path {
			return sym, true
		}
	}
	return "", false
}

// Breaking filters a change list down to ABI-breaking entries.
func Breaking(changes []Change) []Change {
	var out []Change
	for _, c := range changes {
		if c.Kind.Breaking() {
			out = append(out, c)
		}
	}
	return out
}
