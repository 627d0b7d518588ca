// Package core: node catalog operations.
package core

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// NodeOption applies attributes to a node when it is added (or updates the
// live dictionary when the node already exists).
type NodeOption func(*Attrs)

// WithNodeAttr sets a single node attribute.
func WithNodeAttr(name string, value any) NodeOption {
	return func(a *Attrs) { a.Set(name, value) }
}

// WithNodeAttrs merges a set of node attributes in sorted-name order.
func WithNodeAttrs(data map[string]any) NodeOption {
	return func(a *Attrs) { a.UpdateMap(data) }
}

// AddNode inserts a node with the given ID, applying any attribute options.
// Adding an existing node is not an error: its attribute dictionary is
// updated in place and its position in iteration order is unchanged.
// Returns ErrEmptyNodeID for the empty ID.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string, opts ...NodeOption) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	attrs, ok := g.nodes.Get(id)
	if !ok {
		attrs = NewAttrs()
		g.nodes.Set(id, attrs)
		g.succ.Set(id, orderedmap.New[string, *edgeBucket]())
		if g.directed {
			g.pred.Set(id, orderedmap.New[string, *edgeBucket]())
		}
	}
	for _, opt := range opts {
		opt(attrs)
	}

	return nil
}

// AddNodesFrom inserts every ID in order; existing nodes are left as-is.
func (g *Graph) AddNodesFrom(ids ...string) error {
	for _, id := range ids {
		if err := g.AddNode(id); err != nil {
			return fmt.Errorf("core: add node %q: %w", id, err)
		}
	}

	return nil
}

// HasNode reports whether a node with the given ID exists. O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes.Get(id)

	return ok
}

// NodeCount returns the number of nodes. O(1).
func (g *Graph) NodeCount() int {
	return g.nodes.Len()
}

// NodeAttrs returns the live attribute dictionary of id.
// Returns ErrNodeNotFound if the node is absent.
func (g *Graph) NodeAttrs(id string) (*Attrs, error) {
	attrs, ok := g.nodes.Get(id)
	if !ok {
		return nil, fmt.Errorf("core: node %q: %w", id, ErrNodeNotFound)
	}

	return attrs, nil
}

// RemoveNode deletes the node and every edge mentioning it, on both sides
// of the store. Returns ErrNodeNotFound if the node is absent.
// Complexity: O(deg(id)).
func (g *Graph) RemoveNode(id string) error {
	if _, ok := g.nodes.Get(id); !ok {
		return fmt.Errorf("core: node %q: %w", id, ErrNodeNotFound)
	}

	// Snapshot neighbor IDs first: the mirror deletions below mutate the
	// atlases being walked.
	out, _ := g.succ.Get(id)
	for _, v := range atlasKeys(out) {
		bucket, _ := out.Get(v)
		g.size -= bucket.Len()
		if v == id {
			continue // self-loop lives only in id's own atlases
		}
		if g.directed {
			if pv, ok := g.pred.Get(v); ok {
				pv.Delete(id)
			}
		} else if sv, ok := g.succ.Get(v); ok {
			sv.Delete(id)
		}
	}
	if g.directed {
		in, _ := g.pred.Get(id)
		for _, u := range atlasKeys(in) {
			if u == id {
				continue // self-loop already accounted above
			}
			bucket, _ := in.Get(u)
			g.size -= bucket.Len()
			if su, ok := g.succ.Get(u); ok {
				su.Delete(id)
			}
		}
		g.pred.Delete(id)
	}
	g.succ.Delete(id)
	g.nodes.Delete(id)

	return nil
}

// Neighbors returns the IDs adjacent to id in insertion order.
// For directed graphs these are the successors; parallel edges contribute
// one entry. Returns ErrNodeNotFound if the node is absent.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]string, error) {
	a, ok := g.succ.Get(id)
	if !ok {
		return nil, fmt.Errorf("core: node %q: %w", id, ErrNodeNotFound)
	}

	return atlasKeys(a), nil
}

// Predecessors returns the IDs with an arc into id, in insertion order.
// For undirected graphs this equals Neighbors.
func (g *Graph) Predecessors(id string) ([]string, error) {
	a, ok := g.pred.Get(id)
	if !ok {
		return nil, fmt.Errorf("core: node %q: %w", id, ErrNodeNotFound)
	}

	return atlasKeys(a), nil
}

// Clear removes all nodes, edges, and graph attributes, preserving the
// variant flags.
func (g *Graph) Clear() {
	g.graph = NewAttrs()
	g.nodes = orderedmap.New[string, *Attrs]()
	g.succ = orderedmap.New[string, *atlas]()
	if g.directed {
		g.pred = orderedmap.New[string, *atlas]()
	} else {
		g.pred = g.succ
	}
	g.size = 0
}

// atlasKeys snapshots the neighbor IDs of an atlas in insertion order.
func atlasKeys(a *atlas) []string {
	if a == nil {
		return nil
	}
	ids := make([]string, 0, a.Len())
	for p := a.Oldest(); p != nil; p = p.Next() {
		ids = append(ids, p.Key)
	}

	return ids
}
