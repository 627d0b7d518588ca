// Package core: copying and directedness conversion.
package core

// Copy returns a deep copy of the graph: same variant, same node and edge
// sets in the same insertion order, with every attribute dictionary
// duplicated. The copy shares nothing with the source, while preserving
// the internal bucket sharing between mirror slots.
// Complexity: O(V + E).
func (g *Graph) Copy() *Graph {
	out := g.CloneEmpty()
	out.graph = g.graph.Clone()
	for e, attrs := range g.Edges().Data() {
		opts := []EdgeOption{withClonedAttrs(attrs)}
		if g.multi {
			opts = append(opts, WithEdgeKey(e.Key))
		}
		_, _ = out.AddEdge(e.U, e.V, opts...)
	}

	return out
}

// CloneEmpty returns a new graph with the same variant flags and the same
// nodes (attribute dictionaries deep-copied) but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	out := NewGraph(g.variantOptions()...)
	for p := g.nodes.Oldest(); p != nil; p = p.Next() {
		_ = out.AddNode(p.Key, withClonedNodeAttrs(p.Value))
	}

	return out
}

// ToDirected returns a directed graph with the same nodes and, for every
// undirected edge (u,v), the two arcs (u,v) and (v,u). Both arcs alias the
// identical attribute dictionary (itself a deep copy of the source's), the
// symmetry invariant applied in reverse. Self-loops yield a single arc.
// Calling ToDirected on an already-directed graph returns a deep copy.
func (g *Graph) ToDirected() *Graph {
	if g.directed {
		return g.Copy()
	}
	opts := []GraphOption{WithDirected(true)}
	if g.multi {
		opts = append(opts, WithMultiEdges())
	}
	out := NewGraph(opts...)
	out.graph = g.graph.Clone()
	for p := g.nodes.Oldest(); p != nil; p = p.Next() {
		_ = out.AddNode(p.Key, withClonedNodeAttrs(p.Value))
	}
	for e, attrs := range g.Edges().Data() {
		shared := attrs.Clone()
		addArc(out, e.U, e.V, e.Key, shared, g.multi)
		if e.U != e.V {
			addArc(out, e.V, e.U, e.Key, shared, g.multi)
		}
	}

	return out
}

// ToUndirected returns an undirected graph with the same nodes and one
// edge per unordered endpoint pair. When both arcs (u,v) and (v,u) exist,
// their attributes are merged into one dictionary with the later-seen arc
// winning name clashes. Calling ToUndirected on an already-undirected
// graph returns a deep copy.
func (g *Graph) ToUndirected() *Graph {
	if !g.directed {
		return g.Copy()
	}
	opts := []GraphOption{WithDirected(false)}
	if g.multi {
		opts = append(opts, WithMultiEdges())
	}
	out := NewGraph(opts...)
	out.graph = g.graph.Clone()
	for p := g.nodes.Oldest(); p != nil; p = p.Next() {
		_ = out.AddNode(p.Key, withClonedNodeAttrs(p.Value))
	}
	for e, attrs := range g.Edges().Data() {
		eopts := []EdgeOption{withClonedAttrs(attrs)}
		if g.multi {
			eopts = append(eopts, WithEdgeKey(e.Key))
		}
		_, _ = out.AddEdge(e.U, e.V, eopts...)
	}

	return out
}

// withClonedAttrs merges a deep copy of src into the target edge record.
func withClonedAttrs(src *Attrs) EdgeOption {
	return func(c *edgeConfig) {
		c.apply = append(c.apply, func(a *Attrs) { a.Update(src.Clone()) })
	}
}

// withClonedNodeAttrs merges a deep copy of src into the target node record.
func withClonedNodeAttrs(src *Attrs) NodeOption {
	return func(a *Attrs) { a.Update(src.Clone()) }
}

// addArc inserts a directed edge record whose attribute dictionary is the
// given shared instance, bypassing the fresh-dictionary allocation of
// AddEdge. Both endpoints must already exist in out.
func addArc(out *Graph, u, v string, key int, shared *Attrs, multi bool) {
	bucket := out.ensureBucket(u, v)
	if !multi {
		key = simpleKey
	}
	if _, ok := bucket.Get(key); !ok {
		out.size++
	}
	bucket.Set(key, shared)
}
