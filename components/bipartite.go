package components

import (
	"errors"

	"github.com/luk036/xnetgo/bfs"
	"github.com/luk036/xnetgo/core"
)

// BipartiteSets splits the nodes of the undirected graph g into its two
// bipartite blocks. The first block contains the first-inserted node; both
// blocks list their nodes in insertion order.
//
// The coloring comes from breadth-first depth parity: nodes at even
// distance from the start form one block, nodes at odd distance the other.
// An edge joining two nodes of equal parity closes an odd cycle, so the
// graph is not bipartite (a self-loop is the degenerate case).
//
// The bipartition is only well defined on connected graphs: a disconnected
// graph admits several valid two-colorings, so ErrDisconnected is returned
// rather than an arbitrary choice.
//
// Errors: ErrGraphNil, ErrDirected, ErrEmptyGraph, ErrDisconnected,
// ErrNotBipartite.
func BipartiteSets(g *core.Graph) ([]string, []string, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	if g.IsDirected() {
		return nil, nil, ErrDirected
	}
	if g.NodeCount() == 0 {
		return nil, nil, ErrEmptyGraph
	}

	var start string
	for id := range g.Nodes().All() {
		start = id
		break
	}
	res, err := bfs.BFS(g, start)
	if err != nil {
		return nil, nil, err
	}
	if len(res.Order) < g.NodeCount() {
		return nil, nil, ErrDisconnected
	}

	for e := range g.Edges().All() {
		if res.Depth[e.U]%2 == res.Depth[e.V]%2 {
			return nil, nil, ErrNotBipartite
		}
	}

	var even, odd []string
	for id := range g.Nodes().All() {
		if res.Depth[id]%2 == 0 {
			even = append(even, id)
		} else {
			odd = append(odd, id)
		}
	}

	return even, odd, nil
}

// IsBipartite reports whether the connected undirected graph g is
// two-colorable. It shares the preconditions of BipartiteSets.
func IsBipartite(g *core.Graph) (bool, error) {
	_, _, err := BipartiteSets(g)
	if errors.Is(err, ErrNotBipartite) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}
