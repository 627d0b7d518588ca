package flow

import (
	"github.com/luk036/xnetgo/core"
)

// WeightAttr is the edge attribute carrying cut values on a Gomory-Hu tree.
const WeightAttr = "weight"

// GomoryHuTree returns the Gomory-Hu tree of the undirected graph g.
//
// The tree spans the same node set and represents the minimum s-t cuts for
// all s-t pairs: the minimum cut value between any two nodes equals the
// minimum edge weight on the path between them in the tree. Removing that
// minimum-weight edge splits the tree into the two blocks of the
// corresponding minimum cut of g.
//
// The construction follows Gusfield's simplification, which avoids node
// contraction: the tree starts as a star rooted at an arbitrary node, and
// each of the remaining n-1 nodes triggers exactly one minimum-cut
// computation against its current tree parent, after which nodes on the
// source side of the cut are re-parented under the source. A single
// residual network is built once and reused across all n-1 computations;
// the flow-reset-on-reuse contract of the flow routines exists precisely
// for this pattern.
//
// Edges lacking the capacity attribute are treated as infinitely capacious
// and may surface ErrUnbounded from the underlying flow computations.
//
// Errors: ErrGraphNil, ErrDirected, ErrMultigraph, ErrEmptyGraph.
// Complexity: n-1 invocations of the flow routine (O(V²·E²) with
// EdmondsKarp) instead of the obvious n(n-1)/2.
func GomoryHuTree(g *core.Graph, opts ...Option) (*core.Graph, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.IsDirected() {
		return nil, ErrDirected
	}
	if g.IsMultigraph() {
		return nil, ErrMultigraph
	}
	if g.NodeCount() == 0 {
		return nil, ErrEmptyGraph
	}

	// Start the tree as a star around the first node, in insertion order.
	var (
		root    string
		leaves  []string // non-root nodes, insertion order
		parent  = make(map[string]string, g.NodeCount()-1)
		labels  = make(map[core.Edge]float64, g.NodeCount()-1)
		started bool
	)
	for id := range g.Nodes().All() {
		if !started {
			root, started = id, true
			continue
		}
		parent[id] = root
		leaves = append(leaves, id)
	}

	// One residual network, reused by every minimum-cut computation.
	r, err := BuildResidualNetwork(g, o.CapacityAttr)
	if err != nil {
		return nil, err
	}
	cutOpts := []Option{
		WithContext(o.Ctx),
		WithCapacityAttr(o.CapacityAttr),
		WithResidual(r),
	}
	if o.FlowFunc != nil {
		cutOpts = append(cutOpts, WithFlowFunc(o.FlowFunc))
	}

	for _, source := range leaves {
		target := parent[source]
		cutValue, partition, err := MinimumCut(g, source, target, cutOpts...)
		if err != nil {
			return nil, err
		}
		labels[treeEdge(source, target)] = cutValue
		// Nodes on the source side whose tree parent is target hang off
		// source from now on; their recorded cut value moves with them
		// when one exists, otherwise the fresh cut value applies.
		for _, node := range partition[0] {
			if node == source || parent[node] != target {
				continue
			}
			parent[node] = source
			if w, ok := labels[treeEdge(node, target)]; ok {
				labels[treeEdge(node, source)] = w
			} else {
				labels[treeEdge(node, source)] = cutValue
			}
		}
	}

	// Assemble the weighted tree from the parent map.
	tree := core.NewGraph()
	for id := range g.Nodes().All() {
		_ = tree.AddNode(id)
	}
	for _, source := range leaves {
		w := labels[treeEdge(source, parent[source])]
		if _, err := tree.AddEdge(source, parent[source], core.WithEdgeAttr(WeightAttr, w)); err != nil {
			return nil, err
		}
	}

	return tree, nil
}

// treeEdge canonicalizes an unordered node pair for the label map.
func treeEdge(u, v string) core.Edge {
	if u > v {
		u, v = v, u
	}

	return core.Edge{U: u, V: v}
}
