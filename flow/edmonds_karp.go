package flow

import (
	"github.com/luk036/xnetgo/core"
)

// EdmondsKarp finds a maximum single-commodity flow from s to t using the
// Edmonds-Karp algorithm: repeated shortest augmenting paths located by a
// bidirectional breadth-first search that always expands the smaller
// frontier. The bidirectional search lowers the constant factor of the
// repeated path searches without changing the O(V·E²) worst-case bound.
//
// It returns the residual network after the computation, with the total
// flow into t recorded as R.Graph()["flow_value"] (see FlowValue). Pass
// WithResidual to reuse a previously built residual network (its flow is
// reset to zero and its topology reused) and WithCutoff to stop early
// once the flow value reaches a threshold (a cutoff may leave R unable to
// induce a minimum cut).
//
// Errors: ErrGraphNil, ErrMultigraph, ErrSourceNotFound, ErrSinkNotFound,
// ErrSameSourceSink, ErrUnbounded when an infinite-capacity s-t path
// exists, or the context's error on cancellation.
//
// Complexity: O(V · E²). Memory: O(V + E).
func EdmondsKarp(g *core.Graph, s, t string, opts ...Option) (*core.Graph, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.IsMultigraph() {
		return nil, ErrMultigraph
	}
	if !g.HasNode(s) {
		return nil, ErrSourceNotFound
	}
	if !g.HasNode(t) {
		return nil, ErrSinkNotFound
	}
	if s == t {
		return nil, ErrSameSourceSink
	}

	r := o.Residual
	if r == nil {
		if r, err = BuildResidualNetwork(g, o.CapacityAttr); err != nil {
			return nil, err
		}
	} else {
		resetFlow(r)
	}

	flowValue, err := edmondsKarpCore(&o, r, s, t)
	if err != nil {
		return nil, err
	}
	r.Graph().Set(FlowValueAttr, flowValue)
	r.Graph().Set(AlgorithmAttr, "edmonds_karp")

	return r, nil
}

// edmondsKarpCore runs the augmentation loop over the residual network r
// until no augmenting path remains or the accumulated flow reaches the
// cutoff. Returns the total flow pushed.
func edmondsKarpCore(o *Options, r *core.Graph, s, t string) (float64, error) {
	inf := ResidualInf(r)
	var flowValue float64
	for flowValue < o.Cutoff {
		select {
		case <-o.Ctx.Done():
			return flowValue, o.Ctx.Err()
		default:
		}

		meet, pred, succ := bidirectionalBFS(r, s, t)
		if pred == nil {
			break // frontiers exhausted: no augmenting path remains
		}
		path := tracePath(meet, s, t, pred, succ)
		pushed, err := augment(r, path, inf)
		if err != nil {
			return flowValue, err
		}
		flowValue += pushed
	}

	return flowValue, nil
}

// bidirectionalBFS searches forward from s and backward from t at the same
// time, expanding whichever frontier is smaller, over arcs with remaining
// residual capacity (flow < capacity). It returns the meeting node
// together with the predecessor map of the forward search and the
// successor map of the backward one, or nil maps when the frontiers
// exhaust without meeting.
func bidirectionalBFS(r *core.Graph, s, t string) (string, map[string]string, map[string]string) {
	pred := map[string]string{s: ""}
	qs := []string{s}
	succ := map[string]string{t: ""}
	qt := []string{t}
	for {
		var q []string
		if len(qs) <= len(qt) {
			for _, u := range qs {
				adj, _ := r.Adj(u)
				for v, attrs := range adj.All() {
					if _, seen := pred[v]; seen || !hasResidual(attrs) {
						continue
					}
					pred[v] = u
					if _, met := succ[v]; met {
						return v, pred, succ
					}
					q = append(q, v)
				}
			}
			if len(q) == 0 {
				return "", nil, nil
			}
			qs = q
		} else {
			for _, u := range qt {
				prd, _ := r.Pred(u)
				for v, attrs := range prd.All() {
					// attrs belongs to the arc (v,u).
					if _, seen := succ[v]; seen || !hasResidual(attrs) {
						continue
					}
					succ[v] = u
					if _, met := pred[v]; met {
						return v, pred, succ
					}
					q = append(q, v)
				}
			}
			if len(q) == 0 {
				return "", nil, nil
			}
			qt = q
		}
	}
}

// tracePath concatenates the s→meet prefix (via pred) with the meet→t
// suffix (via succ) into one augmenting path.
func tracePath(meet, s, t string, pred, succ map[string]string) []string {
	var prefix []string
	for u := meet; u != s; u = pred[u] {
		prefix = append(prefix, u)
	}
	prefix = append(prefix, s)
	// prefix is meet..s; reverse into s..meet.
	for i, j := 0, len(prefix)-1; i < j; i, j = i+1, j-1 {
		prefix[i], prefix[j] = prefix[j], prefix[i]
	}
	for u := meet; u != t; {
		u = succ[u]
		prefix = append(prefix, u)
	}

	return prefix
}

// augment pushes the bottleneck residual capacity along path, updating the
// antisymmetric flow attributes of both arc directions. Returns
// ErrUnbounded when the bottleneck exceeds half the infinity surrogate,
// which proves an infinite-capacity s-t path.
func augment(r *core.Graph, path []string, inf float64) (float64, error) {
	push := inf
	for i := 0; i < len(path)-1; i++ {
		attrs, err := r.EdgeAttrs(path[i], path[i+1])
		if err != nil {
			return 0, err
		}
		if residual := attrs.FloatOr(CapacityAttr, 0) - attrs.FloatOr(FlowAttr, 0); residual < push {
			push = residual
		}
	}
	if push*2 > inf {
		return 0, ErrUnbounded
	}
	for i := 0; i < len(path)-1; i++ {
		fwd, err := r.EdgeAttrs(path[i], path[i+1])
		if err != nil {
			return 0, err
		}
		rev, err := r.EdgeAttrs(path[i+1], path[i])
		if err != nil {
			return 0, err
		}
		fwd.Set(FlowAttr, fwd.FloatOr(FlowAttr, 0)+push)
		rev.Set(FlowAttr, rev.FloatOr(FlowAttr, 0)-push)
	}

	return push, nil
}

// hasResidual reports whether an arc still has usable residual capacity.
func hasResidual(attrs *core.Attrs) bool {
	return attrs.FloatOr(FlowAttr, 0) < attrs.FloatOr(CapacityAttr, 0)
}
