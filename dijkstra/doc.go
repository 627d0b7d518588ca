// Package dijkstra provides a precise, high-performance implementation of Dijkstra's
// shortest-path algorithm on graphs with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source node to all
//     reachable nodes in O((V + E) log V) time, where V = |nodes| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest node.
//   - Supports optional path reconstruction, distance caps, and “impassable” edge thresholds.
//
// When to use:
//
//   - In any scenario where you need guaranteed shortest paths on a static weighted graph.
//   - As a foundation for A* or other heuristic searches (substitute heuristics).
//   - As a building block for network routing, traffic simulations, resource allocation,
//     or any domain requiring exact, non-negative shortest paths.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - WeightAttr: weights come from a configurable edge attribute (default "weight");
//     edges lacking it count as 1, so unweighted graphs yield hop counts.
//   - ReturnPath: if enabled, returns a “predecessor” map, so you can rebuild each path.
//   - MaxDistance: aborts exploration beyond a specified distance, saving work in large graphs.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable (infinite cost).
//   - Works on all four graph variants; parallel edges of a multigraph collapse to the cheapest.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is extracted at most once from the priority queue (V extracts total).
//   - Each edge relaxation may push one new entry (up to E pushes).
//   - Each heap Push/Pop costs O(log N) where N ≤ V + E, simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) to store distance and (optional) predecessor maps.
//   - O(E) worst-case entries in the heap under “lazy decrease-key” strategy.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:
//     Returned if the Source string is empty when calling Dijkstra.
//   - ErrNilGraph:
//     Returned if you pass a nil *core.Graph to Dijkstra.
//   - ErrSourceNotFound:
//     Returned if the specified source node does not exist in the graph
//     (wraps core.ErrNodeNotFound).
//   - ErrNegativeWeight:
//     Returned if any edge in the graph has a negative weight (detected by a fast O(E) pre-scan).
//   - ErrBadMaxDistance:
//     Returned if you set MaxDistance to a negative value.
//   - ErrBadInfThreshold:
//     Returned if you set InfEdgeThreshold to zero or a negative value.
//   - ErrBadWeightAttr:
//     Returned if you set an empty weight attribute name.
//
// API reference:
//
//	func Dijkstra(
//	    g *core.Graph,
//	    opts ...Option,
//	) (dist map[string]float64, prev map[string]string, err error)
//
//	  - g:       pointer to a core.Graph.
//	  - opts:    zero or more functional options, including:
//	      • Source(string):                required, the starting node ID.
//	      • WithWeightAttr(string):        edge attribute read as weight (default "weight").
//	      • WithReturnPath():              if set, returns a predecessor map; otherwise prev == nil.
//	      • WithMaxDistance(float64):      if set, explores only nodes with distance ≤ given value.
//	      • WithInfEdgeThreshold(float64): if set, skips any edge whose weight ≥ threshold.
//	  - dist:    map[v] = minimal distance from Source to v, or +Inf if unreachable.
//	  - prev:    map[v] = immediate predecessor of v on one shortest path from Source,
//	              or "" if v is the Source or v is unreachable. Nil if ReturnPath=false.
//	  - err:     one of the sentinel errors (ErrEmptySource, ErrNilGraph,
//	              ErrSourceNotFound, ErrNegativeWeight, ErrBad*), or nil on success.
//
// Thread safety:
//
//   - Dijkstra itself is not thread-safe if the same *core.Graph is modified concurrently.
//   - If you need concurrent queries on the same graph, synchronize externally (mutexes, channels, etc.).
//
// See also:
//
//   - core.Graph: graph construction, node/edge addition, the four variants.
//   - bfs.BFS: hop-count shortest paths without weights.
package dijkstra
