// Package core: induced subgraph views.
package core

import (
	"fmt"
	"iter"

	"github.com/benbjohnson/immutable"
)

// SubgraphView is a read-only projection of the graph induced by a node
// subset. Node and edge membership is frozen when the view is constructed;
// attribute reads stay live and delegate to the parent graph, so attribute
// mutations made through the parent are visible here. The view never
// copies attribute data.
type SubgraphView struct {
	g     *Graph
	keep  immutable.Set[string]
	order []string // kept node IDs, parent insertion order at creation
	edges []Edge   // induced edge records at creation
}

// Subgraph returns a view restricted to the induced subgraph on ids.
// IDs absent from the graph are ignored. Complexity: O(V + E) to freeze
// the membership; attribute access afterwards is O(1).
func (g *Graph) Subgraph(ids []string) *SubgraphView {
	keep := immutable.NewSet[string](nil)
	for _, id := range ids {
		if g.HasNode(id) {
			keep = keep.Add(id)
		}
	}
	sv := &SubgraphView{g: g, keep: keep}
	for id := range g.Nodes().All() {
		if keep.Has(id) {
			sv.order = append(sv.order, id)
		}
	}
	for e := range g.Edges().All() {
		if keep.Has(e.U) && keep.Has(e.V) {
			sv.edges = append(sv.edges, e)
		}
	}

	return sv
}

// IsDirected mirrors the parent graph's directedness.
func (sv *SubgraphView) IsDirected() bool { return sv.g.IsDirected() }

// IsMultigraph mirrors the parent graph's multi-edge flag.
func (sv *SubgraphView) IsMultigraph() bool { return sv.g.IsMultigraph() }

// HasNode reports membership in the frozen node set.
func (sv *SubgraphView) HasNode(id string) bool { return sv.keep.Has(id) }

// NodeCount returns the frozen node count.
func (sv *SubgraphView) NodeCount() int { return sv.keep.Len() }

// EdgeCount returns the frozen count of induced edge records.
func (sv *SubgraphView) EdgeCount() int { return len(sv.edges) }

// Nodes iterates the frozen node set in the parent's insertion order at
// creation time.
func (sv *SubgraphView) Nodes() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, id := range sv.order {
			if !yield(id) {
				return
			}
		}
	}
}

// Edges iterates the frozen induced edge records.
func (sv *SubgraphView) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for _, e := range sv.edges {
			if !yield(e) {
				return
			}
		}
	}
}

// HasEdge reports membership in the frozen edge set.
func (sv *SubgraphView) HasEdge(u, v string) bool {
	for _, e := range sv.edges {
		if e.U == u && e.V == v {
			return true
		}
		if !sv.g.directed && e.U == v && e.V == u {
			return true
		}
	}

	return false
}

// NodeAttrs returns the live attribute dictionary of a kept node.
// Returns ErrNodeNotFound when id is outside the frozen set or has since
// been removed from the parent.
func (sv *SubgraphView) NodeAttrs(id string) (*Attrs, error) {
	if !sv.keep.Has(id) {
		return nil, fmt.Errorf("core: subgraph node %q: %w", id, ErrNodeNotFound)
	}

	return sv.g.NodeAttrs(id)
}

// EdgeAttrs returns the live attribute dictionary of an induced edge,
// delegating to the parent store.
func (sv *SubgraphView) EdgeAttrs(u, v string) (*Attrs, error) {
	if !sv.keep.Has(u) || !sv.keep.Has(v) {
		return nil, fmt.Errorf("core: subgraph edge (%q,%q): %w", u, v, ErrEdgeNotFound)
	}

	return sv.g.EdgeAttrs(u, v)
}

// ToGraph materializes the view into an independent Graph with deep-copied
// attributes, preserving the parent's variant.
func (sv *SubgraphView) ToGraph() *Graph {
	out := NewGraph(sv.g.variantOptions()...)
	out.graph = sv.g.graph.Clone()
	for _, id := range sv.order {
		if attrs, err := sv.g.NodeAttrs(id); err == nil {
			_ = out.AddNode(id, withClonedNodeAttrs(attrs))
		}
	}
	for _, e := range sv.edges {
		attrs, err := sv.g.EdgeAttrsKey(e.U, e.V, e.Key)
		if err != nil {
			continue // edge removed from the parent since creation
		}
		opts := []EdgeOption{withClonedAttrs(attrs)}
		if sv.g.multi {
			opts = append(opts, WithEdgeKey(e.Key))
		}
		_, _ = out.AddEdge(e.U, e.V, opts...)
	}

	return out
}
