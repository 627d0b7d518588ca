package core

import (
	"iter"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Attrs is an insertion-ordered dictionary of named attribute values.
// It backs graph-level, node-level, and edge-level attribute storage.
//
// Attrs instances are shared by pointer: for an undirected edge (u,v) the
// adjacency slots of u and v hold the same *Attrs, so a mutation made
// through either endpoint is observed through the other. See types.go for
// the full set of aliasing invariants.
//
// Attrs is not safe for concurrent mutation; the graph model assumes a
// single logical owner at a time.
type Attrs struct {
	om *orderedmap.OrderedMap[string, any]
}

// NewAttrs returns an empty attribute dictionary.
func NewAttrs() *Attrs {
	return &Attrs{om: orderedmap.New[string, any]()}
}

// Set stores value under name, preserving the original insertion position
// when name is already present.
func (a *Attrs) Set(name string, value any) {
	a.om.Set(name, value)
}

// Get returns the value stored under name and whether it was present.
func (a *Attrs) Get(name string) (any, bool) {
	return a.om.Get(name)
}

// GetOr returns the value stored under name, or def when absent.
func (a *Attrs) GetOr(name string, def any) any {
	if v, ok := a.om.Get(name); ok {
		return v
	}

	return def
}

// Float returns the value stored under name coerced to float64.
// Accepted dynamic types are float64, float32, int, and int64; any other
// type (or an absent name) reports ok == false.
func (a *Attrs) Float(name string) (float64, bool) {
	v, ok := a.om.Get(name)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// FloatOr returns the numeric value stored under name, or def when the
// attribute is absent or non-numeric.
func (a *Attrs) FloatOr(name string, def float64) float64 {
	if f, ok := a.Float(name); ok {
		return f
	}

	return def
}

// Delete removes name and reports whether it was present.
func (a *Attrs) Delete(name string) bool {
	_, ok := a.om.Delete(name)

	return ok
}

// Len returns the number of stored attributes.
func (a *Attrs) Len() int {
	return a.om.Len()
}

// Keys returns the attribute names in insertion order.
func (a *Attrs) Keys() []string {
	keys := make([]string, 0, a.om.Len())
	for p := a.om.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}

	return keys
}

// All iterates name/value pairs in insertion order.
// The dictionary must not be mutated during iteration.
func (a *Attrs) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for p := a.om.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Update merges every attribute of src into a, overwriting on name clash.
// Values are copied by assignment; reference-typed values remain shared.
func (a *Attrs) Update(src *Attrs) {
	if src == nil {
		return
	}
	for p := src.om.Oldest(); p != nil; p = p.Next() {
		a.om.Set(p.Key, p.Value)
	}
}

// UpdateMap merges the entries of data into a in sorted-name order, so the
// resulting insertion order is deterministic regardless of map layout.
func (a *Attrs) UpdateMap(data map[string]any) {
	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		a.om.Set(name, data[name])
	}
}

// Clone returns an independent copy of the dictionary. The mapping itself
// is duplicated; values are copied by assignment.
func (a *Attrs) Clone() *Attrs {
	out := NewAttrs()
	for p := a.om.Oldest(); p != nil; p = p.Next() {
		out.om.Set(p.Key, p.Value)
	}

	return out
}
