package flow

import (
	"github.com/luk036/xnetgo/bfs"
	"github.com/luk036/xnetgo/core"
)

// MaximumFlow computes a maximum s-t flow and returns its value together
// with a flow dictionary: flowDict[u][v] is the flow crossing the edge
// (u,v) of g, zero when unused. The underlying routine defaults to
// EdmondsKarp and may be replaced via WithFlowFunc.
func MaximumFlow(g *core.Graph, s, t string, opts ...Option) (float64, map[string]map[string]float64, error) {
	r, err := runFlow(g, s, t, opts)
	if err != nil {
		return 0, nil, err
	}
	flowDict, err := BuildFlowDict(g, r)
	if err != nil {
		return 0, nil, err
	}

	return FlowValue(r), flowDict, nil
}

// MaximumFlowValue computes only the value of a maximum s-t flow.
func MaximumFlowValue(g *core.Graph, s, t string, opts ...Option) (float64, error) {
	r, err := runFlow(g, s, t, opts)
	if err != nil {
		return 0, err
	}

	return FlowValue(r), nil
}

// MinimumCut computes the value and the node partition of a minimum s-t
// cut. The first block of the partition always contains s, the second t.
//
// The partition is induced by the residual network left behind by the
// maximum flow: the nodes reachable from s over arcs with flow < capacity
// form the source side. Both blocks preserve the input graph's node
// insertion order.
//
// Returns ErrUnbounded when an infinite-capacity s-t path makes the cut
// undefined.
func MinimumCut(g *core.Graph, s, t string, opts ...Option) (float64, [2][]string, error) {
	var partition [2][]string
	r, err := runFlow(g, s, t, opts)
	if err != nil {
		return 0, partition, err
	}

	reachable, err := residualReachable(r, s)
	if err != nil {
		return 0, partition, err
	}
	for id := range g.Nodes().All() {
		if _, ok := reachable[id]; ok {
			partition[0] = append(partition[0], id)
		} else {
			partition[1] = append(partition[1], id)
		}
	}

	return FlowValue(r), partition, nil
}

// MinimumCutValue computes only the value of a minimum s-t cut.
func MinimumCutValue(g *core.Graph, s, t string, opts ...Option) (float64, error) {
	cutValue, _, err := MinimumCut(g, s, t, opts...)

	return cutValue, err
}

// runFlow resolves options and executes the selected flow routine.
func runFlow(g *core.Graph, s, t string, opts []Option) (*core.Graph, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	flowFunc := o.FlowFunc
	if flowFunc == nil {
		flowFunc = EdmondsKarp
	}

	return flowFunc(g, s, t, opts...)
}

// BuildFlowDict extracts the per-edge flow assignment of g from a residual
// network produced by a flow computation on g. Edges of g carrying no
// positive flow map to zero.
func BuildFlowDict(g *core.Graph, r *core.Graph) (map[string]map[string]float64, error) {
	if g == nil || r == nil {
		return nil, ErrGraphNil
	}
	flowDict := make(map[string]map[string]float64, g.NodeCount())
	for u := range g.Nodes().All() {
		adj, err := g.Adj(u)
		if err != nil {
			return nil, err
		}
		row := make(map[string]float64)
		for v := range adj.Neighbors() {
			row[v] = 0
		}
		radj, err := r.Adj(u)
		if err != nil {
			return nil, err
		}
		for v, attrs := range radj.All() {
			if f := attrs.FloatOr(FlowAttr, 0); f > 0 {
				row[v] = f
			}
		}
		flowDict[u] = row
	}

	return flowDict, nil
}

// residualReachable returns the set of nodes reachable from s over arcs of
// r that still have residual capacity, via a filtered breadth-first search.
func residualReachable(r *core.Graph, s string) (map[string]struct{}, error) {
	res, err := bfs.BFS(r, s, bfs.WithFilterNeighbor(func(cur, nbr string) bool {
		attrs, lookupErr := r.EdgeAttrs(cur, nbr)

		return lookupErr == nil && hasResidual(attrs)
	}))
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(res.Order))
	for _, id := range res.Order {
		seen[id] = struct{}{}
	}

	return seen, nil
}
