// Package export serializes a validated schema tree into the artifact the
// downstream generators consume (host dispatch tables, applet bindings,
// rendered docs). The payload is versioned msgpack plus a content digest, so
// a generator can both reject format drift and tell when the schema actually
// changed.
package export

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"tether/internal/schema"
)

// Current payload version - increment when the Payload format changes.
const payloadVersion uint16 = 1

var ErrVersionMismatch = errors.New("unsupported export payload version")

// Digest identifies schema content; equal digests mean byte-identical
// exports.
type Digest [sha256.Size]byte

func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// Payload is the on-disk envelope around the schema tree.
type Payload struct {
	Version uint16
	// Items counts every node in the tree, a cheap sanity check for
	// consumers that walk it.
	Items uint32
	Root  *schema.Module
}

func countItems(m *schema.Module) int {
	n := 1
	for _, it := range m.Items {
		if it.Kind == schema.ItemModule {
			n += countItems(it.Mod)
		} else {
			n++
		}
	}
	return n
}

// Encode serializes root and returns the encoded bytes with their digest.
func Encode(root *schema.Module) ([]byte, Digest, error) {
	items, err := safecast.Conv[uint32](countItems(root))
	if err != nil {
		return nil, Digest{}, fmt.Errorf("item count overflow: %w", err)
	}
	payload := Payload{
		Version: payloadVersion,
		Items:   items,
		Root:    root,
	}
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.Encode(&payload); err != nil {
		return nil, Digest{}, err
	}
	return buf.Bytes(), sha256.Sum256(buf.Bytes()), nil
}

// Write encodes root and writes it atomically (temp file + rename) to path.
func Write(path string, root *schema.Module) (Digest, error) {
	data, digest, err := Encode(root)
	if err != nil {
		return Digest{}, err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Digest{}, err
	}
	f, err := os.CreateTemp(dir, "tmp-export-*")
	if err != nil {
		return Digest{}, err
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(data); err != nil {
		f.Close()
		return Digest{}, err
	}
	if err := f.Close(); err != nil {
		return Digest{}, err
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return Digest{}, err
	}
	return digest, nil
}

// Read loads an export payload, verifying its version and returning the
// digest of the bytes actually read.
func Read(path string) (*schema.Module, Digest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Digest{}, err
	}
	var payload Payload
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&payload); err != nil {
		return nil, Digest{}, err
	}
	if payload.Version != payloadVersion {
		return nil, Digest{}, fmt.Errorf("%w: %d", ErrVersionMismatch, payload.Version)
	}
	return payload.Root, sha256.Sum256(data), nil
}
