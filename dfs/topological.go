package dfs

import (
	"context"
	"fmt"

	"github.com/luk036/xnetgo/core"
)

// TopoOption configures TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions currently only carries cancellation.
type topoOptions struct {
	ctx context.Context
}

// WithCancelContext sets the cancellation context for TopologicalSort.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter carries the three-color state of one sort.
type topoSorter struct {
	graph *core.Graph
	ctx   context.Context
	state map[string]int
	order []string
}

// TopologicalSort returns a linear ordering of the nodes of the directed
// graph g such that for every arc u→v, u appears before v. The ordering is
// deterministic: DFS trees are rooted in node insertion order and arcs are
// explored in insertion order.
//
// Errors: ErrGraphNil, ErrRequiresDigraph for undirected input,
// ErrCycleDetected when g is not acyclic, or the context's error on
// cancellation.
//
// Complexity: O(V + E). Memory: O(V).
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.IsDirected() {
		return nil, ErrRequiresDigraph
	}
	o := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&o)
	}

	sorter := &topoSorter{
		graph: g,
		ctx:   o.ctx,
		state: make(map[string]int, g.NodeCount()),
		order: make([]string, 0, g.NodeCount()),
	}
	for id := range g.Nodes().All() {
		if sorter.state[id] == white {
			if err := sorter.visit(id); err != nil {
				return nil, err
			}
		}
	}
	// Reverse the post-order into the topological order.
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit explores id depth-first, reporting a back edge as a cycle.
func (t *topoSorter) visit(id string) error {
	select {
	case <-t.ctx.Done():
		return t.ctx.Err()
	default:
	}
	switch t.state[id] {
	case gray:
		return fmt.Errorf("%w: at %q", ErrCycleDetected, id)
	case black:
		return nil
	}
	t.state[id] = gray

	nbrs, err := t.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	for _, nbr := range nbrs {
		if err := t.visit(nbr); err != nil {
			return err
		}
	}

	t.state[id] = black
	t.order = append(t.order, id)

	return nil
}
