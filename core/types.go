// Package core: central Graph type, its adjacency store, and constructors.
//
// This file declares the Graph struct, GraphOption, the internal ordered
// adjacency types, and the four variant constructors.
package core

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// simpleKey is the bucket key used for the single edge record between an
// endpoint pair on non-multigraphs.
const simpleKey = 0

// edgeBucket holds the parallel edge records between one endpoint pair,
// keyed by the multigraph edge key. Non-multigraphs always use simpleKey.
//
// A bucket is heap-allocated once per endpoint pair and referenced from
// both adjacency slots of that pair, which is what makes the aliasing
// invariants below hold at every nesting level.
type edgeBucket = orderedmap.OrderedMap[int, *Attrs]

// atlas maps a neighbor ID to the shared edge bucket for that pair,
// preserving neighbor insertion order.
type atlas = orderedmap.OrderedMap[string, *edgeBucket]

// adjacency maps a node ID to its atlas, preserving node insertion order.
type adjacency = orderedmap.OrderedMap[string, *atlas]

// nodeAtlas maps a node ID to its attribute dictionary.
type nodeAtlas = orderedmap.OrderedMap[string, *Attrs]

// Graph is the in-memory graph data structure.
//
// One type covers the four fixed variants over two orthogonal axes:
//
//	NewGraph        undirected, simple
//	NewDiGraph      directed,   simple
//	NewMultiGraph   undirected, parallel edges
//	NewMultiDiGraph directed,   parallel edges
//
// Topology lives in two adjacency stores. For undirected graphs pred is
// the same object as succ and every edge (u,v) is mirrored, with
// succ[u][v] and succ[v][u] holding the identical edge bucket. For
// directed graphs succ[u][v] and pred[v][u] hold the identical bucket.
// Either way the attribute dictionaries of an edge are shared, never
// copied, between the two slots.
//
// Iteration over nodes, neighbors, and edge keys follows insertion order.
// A Graph and its views are not safe for concurrent mutation; mutating the
// graph while iterating one of its views is undefined behavior.
type Graph struct {
	directed bool // arcs are one-way
	multi    bool // parallel edges permitted

	graph *Attrs     // graph-level attributes
	nodes *nodeAtlas // node ID → node attributes, insertion order
	succ  *adjacency // node ID → successor atlas
	pred  *adjacency // node ID → predecessor atlas; == succ when undirected

	size int // live edge-record count
}

// GraphOption configures a Graph at construction time. The directedness
// and multi-edge axes are fixed for the lifetime of the instance.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are one-way arcs (true) or mutual (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiEdges permits parallel edges between the same endpoints,
// disambiguated by integer edge keys.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.multi = true }
}

// NewGraph creates an empty undirected simple graph.
// Options may override either axis. Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		graph: NewAttrs(),
		nodes: orderedmap.New[string, *Attrs](),
		succ:  orderedmap.New[string, *atlas](),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.directed {
		g.pred = orderedmap.New[string, *atlas]()
	} else {
		// Undirected graphs keep a single mirrored store.
		g.pred = g.succ
	}

	return g
}

// NewDiGraph creates an empty directed simple graph.
func NewDiGraph(opts ...GraphOption) *Graph {
	return NewGraph(append([]GraphOption{WithDirected(true)}, opts...)...)
}

// NewMultiGraph creates an empty undirected multigraph.
func NewMultiGraph(opts ...GraphOption) *Graph {
	return NewGraph(append([]GraphOption{WithMultiEdges()}, opts...)...)
}

// NewMultiDiGraph creates an empty directed multigraph.
func NewMultiDiGraph(opts ...GraphOption) *Graph {
	return NewGraph(append([]GraphOption{WithDirected(true), WithMultiEdges()}, opts...)...)
}

// IsDirected reports whether edges are one-way arcs.
func (g *Graph) IsDirected() bool { return g.directed }

// IsMultigraph reports whether parallel edges are permitted.
func (g *Graph) IsMultigraph() bool { return g.multi }

// Graph returns the live graph-level attribute dictionary.
func (g *Graph) Graph() *Attrs { return g.graph }

// variantOptions reproduces g's construction options, so derived graphs
// (copies, views, converted variants) preserve the variant.
func (g *Graph) variantOptions() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.multi {
		opts = append(opts, WithMultiEdges())
	}

	return opts
}
