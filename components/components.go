package components

import (
	"errors"
	"fmt"

	uf "github.com/spakin/disjoint"

	"github.com/luk036/xnetgo/core"
)

// Sentinel errors for the components package. Errors that instantiate the
// core taxonomy wrap the corresponding core sentinel.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("components: graph is nil")

	// ErrDirected is returned for directed input; connectivity here means
	// undirected connectivity.
	ErrDirected = fmt.Errorf("components: directed graphs not supported: %w", core.ErrNotImplemented)

	// ErrEmptyGraph is returned when connectivity is undefined because the
	// graph has no nodes.
	ErrEmptyGraph = fmt.Errorf("components: connectivity undefined for the empty graph: %w", core.ErrPointlessConcept)

	// ErrDisconnected is returned by BipartiteSets when the graph is
	// disconnected and the two-coloring is therefore not unique.
	ErrDisconnected = fmt.Errorf("components: graph is not connected, bipartition is ambiguous: %w", core.ErrAmbiguousSolution)

	// ErrNotBipartite is returned when the graph contains an odd cycle.
	ErrNotBipartite = errors.New("components: graph contains an odd cycle, not bipartite")
)

// ConnectedComponents returns the connected components of the undirected
// graph g, one node slice per component. Components appear in the insertion
// order of their earliest node, and each component lists its nodes in
// insertion order, so the output is deterministic for a given construction
// sequence.
//
// Built on disjoint-set union with path compression and union by rank:
// near-linear in V + E.
//
// Errors: ErrGraphNil, ErrDirected.
func ConnectedComponents(g *core.Graph) ([][]string, error) {
	reps, order, err := unionNodes(g)
	if err != nil {
		return nil, err
	}

	index := make(map[*uf.Element]int, len(order))
	var comps [][]string
	for _, id := range order {
		root := reps[id].Find()
		i, ok := index[root]
		if !ok {
			i = len(comps)
			index[root] = i
			comps = append(comps, nil)
		}
		comps[i] = append(comps[i], id)
	}

	return comps, nil
}

// NumberConnectedComponents returns the number of connected components of
// the undirected graph g.
func NumberConnectedComponents(g *core.Graph) (int, error) {
	reps, order, err := unionNodes(g)
	if err != nil {
		return 0, err
	}

	roots := make(map[*uf.Element]struct{}, len(order))
	for _, id := range order {
		roots[reps[id].Find()] = struct{}{}
	}

	return len(roots), nil
}

// NodeConnectedComponent returns the nodes of the component containing id,
// in insertion order.
//
// Errors: ErrGraphNil, ErrDirected, core.ErrNodeNotFound.
func NodeConnectedComponent(g *core.Graph, id string) ([]string, error) {
	reps, order, err := unionNodes(g)
	if err != nil {
		return nil, err
	}
	el, ok := reps[id]
	if !ok {
		return nil, fmt.Errorf("components: node %q: %w", id, core.ErrNodeNotFound)
	}

	root := el.Find()
	var comp []string
	for _, other := range order {
		if reps[other].Find() == root {
			comp = append(comp, other)
		}
	}

	return comp, nil
}

// IsConnected reports whether the undirected graph g is connected.
// Connectivity is undefined on the null graph: ErrEmptyGraph.
func IsConnected(g *core.Graph) (bool, error) {
	n, err := NumberConnectedComponents(g)
	if err != nil {
		return false, err
	}
	if g.NodeCount() == 0 {
		return false, ErrEmptyGraph
	}

	return n == 1, nil
}

// unionNodes validates g, creates one disjoint-set element per node, and
// unions the endpoints of every edge. Returns the element map and the node
// insertion order.
func unionNodes(g *core.Graph) (map[string]*uf.Element, []string, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	if g.IsDirected() {
		return nil, nil, ErrDirected
	}

	reps := make(map[string]*uf.Element, g.NodeCount())
	order := make([]string, 0, g.NodeCount())
	for id := range g.Nodes().All() {
		el := uf.NewElement()
		el.Data = id
		reps[id] = el
		order = append(order, id)
	}
	for e := range g.Edges().All() {
		uf.Union(reps[e.U], reps[e.V])
	}

	return reps, order, nil
}
