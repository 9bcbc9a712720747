// Package deckschema validates scientific-simulation input decks against a
// declarative schema table.
//
// The schema table enumerates element types, their fields (name, required
// flag, default literal, value grammar), and their allowed child elements.
// The engine compiles the table once into an immutable registry, then
// validates raw documents against it, resolving attribute strings into typed
// values and collecting every violation in a single pass. Values containing
// deferred-expression sentinels bypass grammar matching and are passed
// through raw for an external expression resolver.
package deckschema

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Schema wraps a compiled registry with convenience methods. It is immutable
// and safe for concurrent use by multiple goroutines.
type Schema struct {
	reg *registry
}

// New compiles a schema table supplied as ElementDefs. It returns an error
// for any malformed table entry; see the registry invariants.
func New(defs []ElementDef) (*Schema, error) {
	reg, err := newRegistry(defs)
	if err != nil {
		return nil, err
	}
	return &Schema{reg: reg}, nil
}

// Load compiles a schema table from its JSON form.
func Load(r io.Reader) (*Schema, error) {
	defs, err := decodeTable(r)
	if err != nil {
		return nil, err
	}
	return New(defs)
}

// LoadFile compiles a schema table from a file path. Tables generated from
// large schema catalogues are commonly shipped gzip-compressed; a ".gz"
// suffix is handled transparently.
func LoadFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schema table %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open schema table %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	s, err := Load(r)
	if err != nil {
		return nil, fmt.Errorf("load schema table %s: %w", path, err)
	}
	return s, nil
}

// Tags returns the sorted element tags known to the schema.
func (s *Schema) Tags() []string {
	out := make([]string, len(s.reg.tags))
	copy(out, s.reg.tags)
	return out
}

// Lookup reports whether an element tag is declared in the schema.
func (s *Schema) Lookup(tag string) bool {
	_, ok := s.reg.lookup(tag)
	return ok
}
