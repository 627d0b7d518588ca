// Package dfs implements depth-first search on core.Graph, plus the two
// classic applications built on its three-color scheme: topological
// sorting and cycle detection.
//
// What
//
//   - DFS(g, startID, opts...): single-source traversal, or a full forest
//     via WithFullTraversal. Reports post-order, depths, parents, and the
//     visited set.
//   - TopologicalSort(g, opts...): linear order of a DAG's nodes;
//     ErrCycleDetected when the graph is not acyclic.
//   - DetectCycles(g): simple cycles found through DFS back edges, each in
//     canonical minimal-rotation form, sorted deterministically.
//
// Determinism
//
// DFS trees are rooted in node insertion order and neighbors explored in
// insertion order, so every result is reproducible run to run.
//
// Options (traversal)
//
//   - WithContext(ctx)        cancellation between node visits.
//   - WithOnVisit(fn)         pre-order hook; an error aborts.
//   - WithOnExit(fn)          post-order hook; an error aborts.
//   - WithMaxDepth(limit)     stop recursing beyond the given depth.
//   - WithFilterNeighbor(fn)  skip edges the predicate rejects.
//   - WithFullTraversal()     cover every component.
//
// Errors
//
//   - ErrGraphNil            nil graph.
//   - ErrStartNodeNotFound   missing start node (single-source mode).
//   - ErrRequiresDigraph     TopologicalSort on an undirected graph.
//   - ErrCycleDetected       TopologicalSort on a cyclic graph.
//   - context.Canceled       when the context is done.
//
// Complexity: O(V + E) time, O(V) memory for all three entry points.
//
// See also: bfs.BFS for breadth-first traversal.
package dfs
