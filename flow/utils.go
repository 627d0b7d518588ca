package flow

import (
	"github.com/luk036/xnetgo/bfs"
	"github.com/luk036/xnetgo/core"
)

// DetectUnboundedness reports whether the residual network r admits an s-t
// path consisting solely of infinite-capacity arcs, in which case the
// maximum flow is unbounded above and ErrUnbounded is returned.
//
// Augmentation-based routines discover unboundedness lazily, when a single
// augmentation moves more than half the infinity surrogate. This check is
// the eager alternative: a breadth-first search restricted to arcs whose
// capacity equals the surrogate, run before any flow is pushed.
//
// Complexity: O(V + E) over r.
func DetectUnboundedness(r *core.Graph, s, t string) error {
	if r == nil {
		return ErrGraphNil
	}
	inf := ResidualInf(r)
	res, err := bfs.BFS(r, s, bfs.WithFilterNeighbor(func(cur, nbr string) bool {
		attrs, lookupErr := r.EdgeAttrs(cur, nbr)

		return lookupErr == nil && attrs.FloatOr(CapacityAttr, 0) == inf
	}))
	if err != nil {
		return err
	}
	for _, id := range res.Order {
		if id == t {
			return ErrUnbounded
		}
	}

	return nil
}
