// Package core: edge operations over the shared-bucket adjacency store.
package core

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Edge identifies one edge record: the endpoint pair plus the multigraph
// key (always 0 on non-multigraphs).
type Edge struct {
	U, V string
	Key  int
}

// edgeConfig collects per-call AddEdge parameters.
type edgeConfig struct {
	key    int
	hasKey bool
	apply  []func(*Attrs)
}

// EdgeOption configures a single AddEdge call.
type EdgeOption func(*edgeConfig)

// WithEdgeKey supplies an explicit multigraph key. Adding with a key that
// already exists between the endpoints updates that record's attributes in
// place instead of creating a parallel edge. Rejected on non-multigraphs
// with ErrInvalidArgument.
func WithEdgeKey(key int) EdgeOption {
	return func(c *edgeConfig) {
		c.key = key
		c.hasKey = true
	}
}

// WithEdgeAttr sets a single edge attribute.
func WithEdgeAttr(name string, value any) EdgeOption {
	return func(c *edgeConfig) {
		c.apply = append(c.apply, func(a *Attrs) { a.Set(name, value) })
	}
}

// WithEdgeAttrs merges a set of edge attributes in sorted-name order.
func WithEdgeAttrs(data map[string]any) EdgeOption {
	return func(c *edgeConfig) {
		c.apply = append(c.apply, func(a *Attrs) { a.UpdateMap(data) })
	}
}

// AddEdge records an edge from u to v and returns the key of the record it
// created or updated (always 0 on non-multigraphs).
//
// Endpoints absent from the graph are created implicitly. This permissive
// behavior supports incremental construction but can mask typos; callers
// that want strict validation must check HasNode first.
//
// Simple graphs: re-adding an existing edge merges the new attributes into
// the existing shared dictionary in place, so every holder of that
// dictionary observes the update. Undirected graphs mirror the record so
// that the adjacency of u and of v reference the identical bucket.
//
// Multigraphs: each call creates a new parallel record under the next free
// integer key unless WithEdgeKey names an existing one.
//
// Returns ErrEmptyNodeID for empty endpoints and ErrInvalidArgument for an
// explicit key on a non-multigraph. Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, opts ...EdgeOption) (int, error) {
	if u == "" || v == "" {
		return 0, ErrEmptyNodeID
	}
	var cfg edgeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.hasKey && !g.multi {
		return 0, fmt.Errorf("core: explicit edge key on a non-multigraph: %w", ErrInvalidArgument)
	}

	if err := g.AddNode(u); err != nil {
		return 0, err
	}
	if err := g.AddNode(v); err != nil {
		return 0, err
	}

	bucket := g.ensureBucket(u, v)
	key := simpleKey
	switch {
	case g.multi && cfg.hasKey:
		key = cfg.key
	case g.multi:
		key = nextFreeKey(bucket)
	}

	attrs, ok := bucket.Get(key)
	if !ok {
		attrs = NewAttrs()
		bucket.Set(key, attrs)
		g.size++
	}
	for _, apply := range cfg.apply {
		apply(attrs)
	}

	return key, nil
}

// AddEdgesFrom records each (u,v) pair in order, applying the same options
// to every edge. Earlier pairs stay committed if a later one fails.
func (g *Graph) AddEdgesFrom(pairs [][2]string, opts ...EdgeOption) error {
	for _, p := range pairs {
		if _, err := g.AddEdge(p[0], p[1], opts...); err != nil {
			return fmt.Errorf("core: add edge (%q,%q): %w", p[0], p[1], err)
		}
	}

	return nil
}

// RemoveEdge deletes one edge record between u and v: the only record on
// simple graphs, the most recently added one on multigraphs. The mirror
// slot (or predecessor slot, when directed) is cleaned up symmetrically.
// Returns ErrEdgeNotFound if no such edge exists; absence is a hard error
// because silently ignoring it would mask caller bugs.
func (g *Graph) RemoveEdge(u, v string) error {
	bucket := g.lookupBucket(u, v)
	if bucket == nil || bucket.Len() == 0 {
		return fmt.Errorf("core: edge (%q,%q): %w", u, v, ErrEdgeNotFound)
	}
	newest := bucket.Newest()

	return g.removeEdgeRecord(u, v, bucket, newest.Key)
}

// RemoveEdgeKey deletes the edge record with the given multigraph key.
// Returns ErrEdgeNotFound if the pair or that specific key is absent.
func (g *Graph) RemoveEdgeKey(u, v string, key int) error {
	bucket := g.lookupBucket(u, v)
	if bucket == nil {
		return fmt.Errorf("core: edge (%q,%q): %w", u, v, ErrEdgeNotFound)
	}
	if _, ok := bucket.Get(key); !ok {
		return fmt.Errorf("core: edge (%q,%q,%d): %w", u, v, key, ErrEdgeNotFound)
	}

	return g.removeEdgeRecord(u, v, bucket, key)
}

// HasEdge reports whether at least one edge from u to v exists. Undirected
// graphs answer for either orientation via the mirrored store. O(1).
func (g *Graph) HasEdge(u, v string) bool {
	bucket := g.lookupBucket(u, v)

	return bucket != nil && bucket.Len() > 0
}

// HasEdgeKey reports whether the edge record (u,v,key) exists. O(1).
func (g *Graph) HasEdgeKey(u, v string, key int) bool {
	bucket := g.lookupBucket(u, v)
	if bucket == nil {
		return false
	}
	_, ok := bucket.Get(key)

	return ok
}

// EdgeAttrs returns the live attribute dictionary of the edge from u to v.
// On multigraphs it resolves to the oldest parallel record; use
// EdgeAttrsKey for a specific one. Returns ErrEdgeNotFound if absent.
func (g *Graph) EdgeAttrs(u, v string) (*Attrs, error) {
	bucket := g.lookupBucket(u, v)
	if bucket == nil || bucket.Len() == 0 {
		return nil, fmt.Errorf("core: edge (%q,%q): %w", u, v, ErrEdgeNotFound)
	}

	return bucket.Oldest().Value, nil
}

// EdgeAttrsKey returns the live attribute dictionary of (u,v,key).
func (g *Graph) EdgeAttrsKey(u, v string, key int) (*Attrs, error) {
	bucket := g.lookupBucket(u, v)
	if bucket == nil {
		return nil, fmt.Errorf("core: edge (%q,%q): %w", u, v, ErrEdgeNotFound)
	}
	attrs, ok := bucket.Get(key)
	if !ok {
		return nil, fmt.Errorf("core: edge (%q,%q,%d): %w", u, v, key, ErrEdgeNotFound)
	}

	return attrs, nil
}

// EdgeCount returns the number of edge records (parallel edges counted
// individually). O(1).
func (g *Graph) EdgeCount() int {
	return g.size
}

// SetNodeAttributes sets name=value on every node.
func SetNodeAttributes(g *Graph, name string, value any) {
	for p := g.nodes.Oldest(); p != nil; p = p.Next() {
		p.Value.Set(name, value)
	}
}

// SetEdgeAttributes sets name=value on every edge record.
func SetEdgeAttributes(g *Graph, name string, value any) {
	for _, attrs := range g.Edges().Data() {
		attrs.Set(name, value)
	}
}

// Internal helpers:
////////////////////

// lookupBucket resolves the shared bucket for (u,v), nil when absent.
func (g *Graph) lookupBucket(u, v string) *edgeBucket {
	a, ok := g.succ.Get(u)
	if !ok {
		return nil
	}
	bucket, ok := a.Get(v)
	if !ok {
		return nil
	}

	return bucket
}

// ensureBucket resolves or creates the shared bucket for (u,v), wiring the
// mirror slot so both endpoints reference the identical object. Both nodes
// must already exist.
func (g *Graph) ensureBucket(u, v string) *edgeBucket {
	su, _ := g.succ.Get(u)
	bucket, ok := su.Get(v)
	if ok {
		return bucket
	}
	bucket = orderedmap.New[int, *Attrs]()
	su.Set(v, bucket)
	if g.directed {
		pv, _ := g.pred.Get(v)
		pv.Set(u, bucket)
	} else if u != v {
		sv, _ := g.succ.Get(v)
		sv.Set(u, bucket)
	}

	return bucket
}

// removeEdgeRecord drops one keyed record and, when the bucket empties,
// unlinks it from both adjacency slots.
func (g *Graph) removeEdgeRecord(u, v string, bucket *edgeBucket, key int) error {
	bucket.Delete(key)
	g.size--
	if bucket.Len() > 0 {
		return nil
	}
	// Unlink the now-empty bucket from both sides. The bucket pointer may
	// live in succ[v][u] rather than succ[u][v] when the caller passed the
	// reverse orientation of an undirected edge.
	if su, ok := g.succ.Get(u); ok {
		su.Delete(v)
	}
	if g.directed {
		if pv, ok := g.pred.Get(v); ok {
			pv.Delete(u)
		}
	} else if u != v {
		if sv, ok := g.succ.Get(v); ok {
			sv.Delete(u)
		}
	}

	return nil
}

// nextFreeKey returns the smallest key not in use by the bucket, starting
// from the bucket length (matching the auto-increment contract).
func nextFreeKey(bucket *orderedmap.OrderedMap[int, *Attrs]) int {
	key := bucket.Len()
	for {
		if _, ok := bucket.Get(key); !ok {
			return key
		}
		key++
	}
}
