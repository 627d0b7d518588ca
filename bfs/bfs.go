// Package bfs implements breadth-first search over a core.Graph.
//
// The search expands the frontier one depth layer at a time, so Depth
// holds unweighted shortest-path distances and Parent encodes a
// shortest-path tree rooted at the start node.
package bfs

import (
	"errors"
	"fmt"

	"github.com/luk036/xnetgo/core"
)

// ErrNeighbors wraps adjacency lookup failures from the graph.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// frontierEntry is one queued node together with its layer.
type frontierEntry struct {
	id    string
	depth int
}

// BFS runs breadth-first search on g from startID. Directed graphs are
// walked along out-edges; neighbors come back in insertion order, so two
// runs over the same construction sequence visit nodes identically.
//
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation when an option carries a bad value, and otherwise
// whatever error a user hook or the context produced.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(startID) {
		return nil, ErrStartNodeNotFound
	}

	n := g.NodeCount()
	res := &BFSResult{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}

	// Slice-backed FIFO; head advances instead of re-slicing so the
	// backing array is filled at most once per run.
	queue := make([]frontierEntry, 0, n)
	push := func(id string, depth int) {
		res.Depth[id] = depth
		o.OnEnqueue(id, depth)
		queue = append(queue, frontierEntry{id: id, depth: depth})
	}
	push(startID, 0)

	for head := 0; head < len(queue); head++ {
		if err := o.Ctx.Err(); err != nil {
			return res, err
		}

		cur := queue[head]
		o.OnDequeue(cur.id, cur.depth)
		res.Order = append(res.Order, cur.id)
		if err := o.OnVisit(cur.id, cur.depth); err != nil {
			return res, fmt.Errorf("bfs: OnVisit error at %q: %w", cur.id, err)
		}

		if o.MaxDepth > 0 && cur.depth == o.MaxDepth {
			continue
		}
		if err := expand(g, &o, res, cur, push); err != nil {
			return res, err
		}
	}

	return res, nil
}

// expand pushes every unseen, unfiltered neighbor of cur onto the frontier.
func expand(g *core.Graph, o *BFSOptions, res *BFSResult, cur frontierEntry, push func(string, int)) error {
	adj, err := g.Adj(cur.id)
	if err != nil {
		return fmt.Errorf("%w: adjacency of %q: %v", ErrNeighbors, cur.id, err)
	}
	for nbr := range adj.Neighbors() {
		if cerr := o.Ctx.Err(); cerr != nil {
			return cerr
		}
		if !o.FilterNeighbor(cur.id, nbr) {
			continue
		}
		if _, seen := res.Depth[nbr]; seen {
			continue
		}
		res.Parent[nbr] = cur.id
		push(nbr, cur.depth+1)
	}

	return nil
}
