package flow

import (
	"math"

	"github.com/luk036/xnetgo/core"
)

// BuildResidualNetwork builds a residual network for g and initializes a
// zero flow.
//
// The residual network R has the same node set as g. R is a directed
// simple graph that contains the pair of arcs (u,v) and (v,u) iff (u,v) is
// not a self-loop and at least one of (u,v) and (v,u) exists in g with
// positive capacity.
//
// For each arc (u,v) of R, R[u][v].capacity equals the capacity of (u,v)
// in g if it exists there, zero otherwise. Infinite capacities (attribute
// absent or +Inf) are replaced by a high finite surrogate stored in
// R.Graph()["inf"]: three times the sum of the finite capacities plus one.
// The surrogate keeps infinite-capacity arcs distinguishable for
// unboundedness detection while letting them participate directly in
// residual arithmetic: the residual capacity of an infinite-capacity arc
// is always at least 2/3 of inf, that of a finite one at most 1/3, so a
// single augmentation moving more than inf/2 units proves an
// infinite-capacity s-t path exists.
//
// R[u][v].flow is initialized to zero on every arc and satisfies
// R[u][v].flow == -R[v][u].flow after any sequence of augmentations.
//
// The returned network is a caller-managed mutable resource: flow
// computations reset its flow and may be pointed at it repeatedly via
// WithResidual.
//
// Returns ErrGraphNil and ErrMultigraph for unusable input.
// Complexity: O(V + E).
func BuildResidualNetwork(g *core.Graph, capacityAttr string) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.IsMultigraph() {
		return nil, ErrMultigraph
	}
	if capacityAttr == "" {
		capacityAttr = DefaultCapacityAttr
	}

	r := core.NewDiGraph()
	for id := range g.Nodes().All() {
		_ = r.AddNode(id)
	}

	// Collect the positive-capacity, non-self-loop edges and the finite
	// capacity sum for the infinity surrogate.
	type capEdge struct {
		u, v string
		cap  float64
	}
	var (
		edges     []capEdge
		finiteSum float64
	)
	for e, attrs := range g.Edges().Data() {
		if e.U == e.V {
			continue
		}
		c := attrs.FloatOr(capacityAttr, math.Inf(1))
		if c <= 0 {
			continue
		}
		if !math.IsInf(c, 1) {
			finiteSum += c
		}
		edges = append(edges, capEdge{u: e.U, v: e.V, cap: c})
	}
	inf := 3*finiteSum + 1

	if g.IsDirected() {
		for _, e := range edges {
			c := math.Min(e.cap, inf)
			if !r.HasEdge(e.u, e.v) {
				// Both (u,v) and (v,u) must be present in the residual
				// network.
				if _, err := r.AddEdge(e.u, e.v, core.WithEdgeAttr(CapacityAttr, c)); err != nil {
					return nil, err
				}
				if _, err := r.AddEdge(e.v, e.u, core.WithEdgeAttr(CapacityAttr, 0.0)); err != nil {
					return nil, err
				}
				continue
			}
			// The arc (u,v) was created as the zero-capacity reverse of
			// (v,u); overwrite its capacity.
			attrs, err := r.EdgeAttrs(e.u, e.v)
			if err != nil {
				return nil, err
			}
			attrs.Set(CapacityAttr, c)
		}
	} else {
		for _, e := range edges {
			// A pair of arcs with equal residual capacities.
			c := math.Min(e.cap, inf)
			if _, err := r.AddEdge(e.u, e.v, core.WithEdgeAttr(CapacityAttr, c)); err != nil {
				return nil, err
			}
			if _, err := r.AddEdge(e.v, e.u, core.WithEdgeAttr(CapacityAttr, c)); err != nil {
				return nil, err
			}
		}
	}

	core.SetEdgeAttributes(r, FlowAttr, 0.0)
	r.Graph().Set(InfAttr, inf)

	return r, nil
}

// resetFlow zeroes the flow attribute on every arc of a (possibly reused)
// residual network. Part of the reuse contract: topology is kept, flow is
// not.
func resetFlow(r *core.Graph) {
	core.SetEdgeAttributes(r, FlowAttr, 0.0)
}
