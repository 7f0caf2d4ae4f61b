package index

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Index maps lower-cased card names to their type tags. Insertion
// order is remembered so serialization is deterministic for a given
// dataset.
type Index struct {
	names []string
	types map[string][]string
}

// New returns an empty index.
func New() *Index {
	return &Index{types: make(map[string][]string)}
}

// Len returns the number of indexed names.
func (ix *Index) Len() int {
	return len(ix.names)
}

// Names returns the indexed names in insertion order.
func (ix *Index) Names() []string {
	return ix.names
}

// Get looks up the type tags for a card name. Matching is
// case-insensitive since the index stores lower-cased names.
func (ix *Index) Get(name string) ([]string, bool) {
	types, ok := ix.types[strings.ToLower(name)]
	return types, ok
}

// set stores types under key. An existing key takes the new value but
// keeps its original position.
func (ix *Index) set(key string, types []string) {
	if _, ok := ix.types[key]; !ok {
		ix.names = append(ix.names, key)
	}
	ix.types[key] = types
}

// has reports whether key is already indexed.
func (ix *Index) has(key string) bool {
	_, ok := ix.types[key]
	return ok
}

// EncodeJSON renders the index as a JSON object whose key order is the
// insertion order, with a space after each colon and comma. That is
// the layout the database files have always used, so rebuilding an
// unchanged dataset yields byte-identical output.
func (ix *Index) EncodeJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, name := range ix.names {
		if i > 0 {
			buf.WriteString(", ")
		}

		key, err := json.Marshal(name)
		if err != nil {
			return nil, fmt.Errorf("error encoding name %q: %v", name, err)
		}
		buf.Write(key)
		buf.WriteString(": ")

		buf.WriteByte('[')
		for j, tag := range ix.types[name] {
			if j > 0 {
				buf.WriteString(", ")
			}
			val, err := json.Marshal(tag)
			if err != nil {
				return nil, fmt.Errorf("error encoding type %q: %v", tag, err)
			}
			buf.Write(val)
		}
		buf.WriteByte(']')
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
