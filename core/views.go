// Package core: live, read-only, non-copying views over a Graph.
//
// A view holds a reference to the graph's live store and computes each
// element lazily; it never materializes the underlying data. Obtaining a
// view is O(1). Views observe every later mutation of the graph (liveness),
// but mutating the graph while an iteration obtained from a view is in
// flight is undefined behavior; the no-mutation-during-iteration contract
// is the caller's responsibility and is not runtime-enforced.
package core

import (
	"fmt"
	"iter"
)

// NodeSet is a plain set of node IDs used by the NodeView set algebra.
type NodeSet map[string]struct{}

// NodeView is a live projection of the graph's node catalog.
type NodeView struct {
	g *Graph
}

// Nodes returns a live view over the node catalog.
func (g *Graph) Nodes() NodeView { return NodeView{g: g} }

// Len returns the current node count.
func (nv NodeView) Len() int { return nv.g.nodes.Len() }

// Contains reports membership against the live catalog.
func (nv NodeView) Contains(id string) bool { return nv.g.HasNode(id) }

// All iterates node IDs in insertion order.
func (nv NodeView) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for p := nv.g.nodes.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key) {
				return
			}
		}
	}
}

// Attrs returns the live attribute dictionary of id.
// Returns ErrNodeNotFound if the node is absent from the graph.
func (nv NodeView) Attrs(id string) (*Attrs, error) {
	return nv.g.NodeAttrs(id)
}

// Data iterates (id, value-of-attr) pairs in insertion order, substituting
// def when a node lacks the attribute.
func (nv NodeView) Data(attr string, def any) iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for p := nv.g.nodes.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value.GetOr(attr, def)) {
				return
			}
		}
	}
}

// ToSet snapshots the current node IDs.
func (nv NodeView) ToSet() NodeSet {
	out := make(NodeSet, nv.g.nodes.Len())
	for id := range nv.All() {
		out[id] = struct{}{}
	}

	return out
}

// Union returns the IDs present in the view or in other.
func (nv NodeView) Union(other NodeSet) NodeSet {
	out := nv.ToSet()
	for id := range other {
		out[id] = struct{}{}
	}

	return out
}

// Intersect returns the IDs present in both the view and other.
func (nv NodeView) Intersect(other NodeSet) NodeSet {
	out := make(NodeSet)
	for id := range other {
		if nv.g.HasNode(id) {
			out[id] = struct{}{}
		}
	}

	return out
}

// Difference returns the IDs present in the view but not in other.
func (nv NodeView) Difference(other NodeSet) NodeSet {
	out := nv.ToSet()
	for id := range other {
		delete(out, id)
	}

	return out
}

// EdgeView is a live projection of the graph's edge set.
type EdgeView struct {
	g *Graph
}

// Edges returns a live view over the edge set.
func (g *Graph) Edges() EdgeView { return EdgeView{g: g} }

// Count returns the current number of edge records.
func (ev EdgeView) Count() int { return ev.g.size }

// Contains reports whether an edge from u to v exists, tolerating both
// orientations on undirected graphs.
func (ev EdgeView) Contains(u, v string) bool { return ev.g.HasEdge(u, v) }

// ContainsKey reports whether the record (u,v,key) exists.
func (ev EdgeView) ContainsKey(u, v string, key int) bool { return ev.g.HasEdgeKey(u, v, key) }

// All iterates every edge record once, in node insertion order of the
// first endpoint. Undirected edges are reported from the endpoint that was
// inserted first; self-loops appear once.
func (ev EdgeView) All() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for e := range ev.Data() {
			if !yield(e) {
				return
			}
		}
	}
}

// Data iterates (edge, live attribute dictionary) pairs with the same
// ordering contract as All.
func (ev EdgeView) Data() iter.Seq2[Edge, *Attrs] {
	g := ev.g

	return func(yield func(Edge, *Attrs) bool) {
		seen := make(map[string]struct{}, g.nodes.Len())
		for np := g.succ.Oldest(); np != nil; np = np.Next() {
			u := np.Key
			for ap := np.Value.Oldest(); ap != nil; ap = ap.Next() {
				v := ap.Key
				if !g.directed {
					// Mirror slots share buckets; report each edge from
					// the endpoint encountered first.
					if _, done := seen[v]; done {
						continue
					}
				}
				for bp := ap.Value.Oldest(); bp != nil; bp = bp.Next() {
					if !yield(Edge{U: u, V: v, Key: bp.Key}, bp.Value) {
						return
					}
				}
			}
			seen[u] = struct{}{}
		}
	}
}

// Values iterates (edge, value-of-attr) pairs, substituting def when an
// edge lacks the attribute.
func (ev EdgeView) Values(attr string, def any) iter.Seq2[Edge, any] {
	return func(yield func(Edge, any) bool) {
		for e, attrs := range ev.Data() {
			if !yield(e, attrs.GetOr(attr, def)) {
				return
			}
		}
	}
}

// AtlasView is a live projection of one node's adjacency: its neighbors
// and the shared edge attribute dictionaries.
type AtlasView struct {
	g    *Graph
	node string
	a    *atlas
}

// Adj returns a live adjacency view of id (successors, when directed).
// Returns ErrNodeNotFound if the node is absent.
func (g *Graph) Adj(id string) (AtlasView, error) {
	a, ok := g.succ.Get(id)
	if !ok {
		return AtlasView{}, fmt.Errorf("core: node %q: %w", id, ErrNodeNotFound)
	}

	return AtlasView{g: g, node: id, a: a}, nil
}

// Pred returns a live adjacency view of id's predecessors. For undirected
// graphs this is the same view as Adj.
func (g *Graph) Pred(id string) (AtlasView, error) {
	a, ok := g.pred.Get(id)
	if !ok {
		return AtlasView{}, fmt.Errorf("core: node %q: %w", id, ErrNodeNotFound)
	}

	return AtlasView{g: g, node: id, a: a}, nil
}

// Neighbors iterates adjacent node IDs in insertion order.
func (av AtlasView) Neighbors() iter.Seq[string] {
	return func(yield func(string) bool) {
		for p := av.a.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key) {
				return
			}
		}
	}
}

// All iterates (neighbor, attrs) pairs in insertion order. On multigraphs
// the oldest parallel record represents the pair; use Edges for all of
// them.
func (av AtlasView) All() iter.Seq2[string, *Attrs] {
	return func(yield func(string, *Attrs) bool) {
		for p := av.a.Oldest(); p != nil; p = p.Next() {
			if oldest := p.Value.Oldest(); oldest != nil {
				if !yield(p.Key, oldest.Value) {
					return
				}
			}
		}
	}
}

// Edges iterates every keyed record incident to the viewed node.
func (av AtlasView) Edges() iter.Seq2[Edge, *Attrs] {
	return func(yield func(Edge, *Attrs) bool) {
		for p := av.a.Oldest(); p != nil; p = p.Next() {
			for bp := p.Value.Oldest(); bp != nil; bp = bp.Next() {
				if !yield(Edge{U: av.node, V: p.Key, Key: bp.Key}, bp.Value) {
					return
				}
			}
		}
	}
}

// Lookup returns the live attribute dictionary of the edge to v (the
// oldest record, on multigraphs). Returns ErrEdgeNotFound if absent.
func (av AtlasView) Lookup(v string) (*Attrs, error) {
	bucket, ok := av.a.Get(v)
	if !ok || bucket.Len() == 0 {
		return nil, fmt.Errorf("core: edge (%q,%q): %w", av.node, v, ErrEdgeNotFound)
	}

	return bucket.Oldest().Value, nil
}

// LookupKey returns the live attribute dictionary of the record (node,v,key).
func (av AtlasView) LookupKey(v string, key int) (*Attrs, error) {
	bucket, ok := av.a.Get(v)
	if !ok {
		return nil, fmt.Errorf("core: edge (%q,%q): %w", av.node, v, ErrEdgeNotFound)
	}
	attrs, ok := bucket.Get(key)
	if !ok {
		return nil, fmt.Errorf("core: edge (%q,%q,%d): %w", av.node, v, key, ErrEdgeNotFound)
	}

	return attrs, nil
}

// Len returns the current number of distinct neighbors.
func (av AtlasView) Len() int { return av.a.Len() }
