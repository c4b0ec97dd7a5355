package domain

import "sort"

// Document is the whole key-to-value mapping persisted as one encrypted unit.
// Values are whatever encoding/json produces: float64, string, bool, nil,
// []any and map[string]any.
type Document map[string]any

// NewDocument returns an empty, non-nil Document.
func NewDocument() Document { return Document{} }

// Keys returns the document keys in ascending order.
func (d Document) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether key is present.
func (d Document) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// Clone returns a shallow copy of d. The copy is never nil.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
