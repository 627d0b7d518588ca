// Package bfs implements breadth-first search over a core.Graph, reporting
// visit order, hop distances, and the shortest-path tree.
//
// What
//
//   - BFS(g, startID, opts...): frontier expansion in non-decreasing hop
//     distance from the start. Returns a BFSResult with Order (visit
//     sequence), Depth (hops from the start), and Parent (search tree).
//   - BFSResult.PathTo(dest): fewest-hop path reconstruction from the
//     Parent links.
//
// Determinism
//
// Neighbors are explored in edge insertion order, so the visit sequence is
// reproducible for a given construction sequence. Directed graphs are
// walked along out-edges; undirected edges are traversable from both ends.
//
// Options
//
//   - WithContext(ctx)        cancellation between node visits.
//   - WithMaxDepth(d)         stop expanding beyond depth d; 0 is no limit.
//   - WithFilterNeighbor(fn)  skip edges the predicate rejects, e.g. the
//     residual-capacity filter the flow package installs.
//   - WithOnEnqueue(fn)       hook when a node joins the frontier.
//   - WithOnDequeue(fn)       hook when a node leaves the frontier.
//   - WithOnVisit(fn)         visit hook; an error aborts the walk.
//
// Errors
//
//   - ErrGraphNil            nil graph.
//   - ErrStartNodeNotFound   missing start node (wraps core.ErrNodeNotFound).
//   - ErrOptionViolation     invalid option value, e.g. negative MaxDepth.
//   - ErrNeighbors           adjacency lookup failure.
//   - context and hook errors pass through wrapped.
//
// Complexity: O(V + E) time, O(V) memory.
//
// See also: dfs.DFS for depth-first traversal, dijkstra for weighted
// shortest paths.
package bfs
