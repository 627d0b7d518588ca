package dfs

import (
	"fmt"

	"github.com/luk036/xnetgo/core"
)

// dfsWalker carries the state of one traversal.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs a depth-first search on g starting at startID. With
// WithFullTraversal the search restarts from every unvisited node in
// insertion order and startID only selects the first tree (it may be empty,
// in which case the forest starts at the first node).
//
// Neighbors are explored in insertion order, so results are deterministic.
// On directed graphs only out-edges are followed.
//
// Errors: ErrGraphNil, ErrStartNodeNotFound, the context's error on
// cancellation, or any error returned by a hook.
//
// Complexity: O(V + E). Memory: O(V).
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.FullTraversal && !g.HasNode(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartNodeNotFound, startID)
	}

	n := g.NodeCount()
	res := &DFSResult{
		Order:   make([]string, 0, n),
		Depth:   make(map[string]int, n),
		Parent:  make(map[string]string, n),
		Visited: make(map[string]bool, n),
	}
	w := &dfsWalker{graph: g, opts: o, res: res}

	if o.FullTraversal {
		if startID != "" && g.HasNode(startID) && !res.Visited[startID] {
			if err := w.traverse(startID, 0); err != nil {
				return res, err
			}
		}
		for id := range g.Nodes().All() {
			if !res.Visited[id] {
				if err := w.traverse(id, 0); err != nil {
					return res, err
				}
			}
		}

		return res, nil
	}
	if err := w.traverse(startID, 0); err != nil {
		return res, err
	}

	return res, nil
}

// traverse visits id at the given depth and recurses into its unvisited
// neighbors, honoring cancellation, the depth limit, hooks, and filtering.
func (w *dfsWalker) traverse(id string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	nbrs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	for _, nbr := range nbrs {
		if w.res.Visited[nbr] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(id, nbr) {
			continue
		}
		w.res.Parent[nbr] = id
		if err := w.traverse(nbr, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
