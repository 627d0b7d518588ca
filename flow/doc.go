// Package flow implements maximum-flow and minimum-cut algorithms on graphs
// represented by *core.Graph, built around an explicit residual network that
// callers may inspect and reuse.
//
// The key routines offered are:
//
//   - BuildResidualNetwork
//
//   - Builds the directed residual network R of a graph, with zero flow.
//
//   - Replaces infinite capacities by a finite surrogate in R.Graph()["inf"].
//
//   - Time: O(V + E). Memory: O(V + E).
//
//   - EdmondsKarp
//
//   - Method: shortest augmenting paths via bidirectional breadth-first
//     search, expanding the smaller frontier.
//
//   - Time: O(V · E²) in the worst case. Memory: O(V + E).
//
//   - Guarantees polynomial worst-case behavior.
//
//   - MaximumFlow / MaximumFlowValue / MinimumCut / MinimumCutValue
//
//   - Interface layer over a pluggable FlowFunc (default EdmondsKarp).
//
//   - MinimumCut derives the node partition from residual reachability.
//
//   - GomoryHuTree
//
//   - Method: Gusfield's algorithm, n-1 minimum cuts against a reusable
//     residual network.
//
//   - The tree encodes the minimum s-t cut values of all node pairs.
//
// # Graph Support
//
// Flow computations accept directed and undirected simple graphs.
// Multigraphs are rejected with ErrMultigraph; GomoryHuTree additionally
// requires undirected input. Capacities are float64 values read from a
// configurable edge attribute (default "capacity"); edges lacking the
// attribute are treated as infinitely capacious. Self-loops never appear in
// residual networks.
//
// # API
//
// All routines take functional options:
//
//	r, err := flow.EdmondsKarp(g, "s", "t",
//	    flow.WithCapacityAttr("bandwidth"),
//	    flow.WithCutoff(100),
//	)
//
//	value, cut, err := flow.MinimumCut(g, "s", "t")
//
//	tree, err := flow.GomoryHuTree(g)
//
// Flow routines return the residual network R. The flow value lives in
// R.Graph()["flow_value"] (see FlowValue), per-arc flow in R[u][v]["flow"],
// and the flow dictionary of the input graph is recovered with
// BuildFlowDict. Passing WithResidual reuses a previously built residual
// network: the topology is kept and the flow is reset to zero, which is how
// GomoryHuTree amortizes its n-1 computations over a single build.
//
// # Errors
//
//	ErrGraphNil        - nil graph pointer.
//	ErrMultigraph      - multigraph input (wraps core.ErrNotImplemented).
//	ErrDirected        - directed input to GomoryHuTree.
//	ErrSourceNotFound  - missing source node (wraps core.ErrNodeNotFound).
//	ErrSinkNotFound    - missing sink node (wraps core.ErrNodeNotFound).
//	ErrSameSourceSink  - source == sink (wraps core.ErrInvalidArgument).
//	ErrUnbounded       - an infinite-capacity s-t path exists.
//	ErrEmptyGraph      - null graph passed to GomoryHuTree.
//	ErrOptionViolation - invalid functional option.
//	context.Canceled / context.DeadlineExceeded - if the context is canceled.
//
// # Integration
//
//   - Relies on github.com/luk036/xnetgo/core for graph storage and iteration.
//   - Uses github.com/luk036/xnetgo/bfs for residual reachability searches.
package flow
