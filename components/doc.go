// Package components provides connectivity helpers over an undirected
// core.Graph: connected components, connectivity predicates, and bipartite
// two-coloring.
//
// What
//
//   - ConnectedComponents: every component as a node slice, deterministic
//     ordering (components by earliest node, nodes in insertion order).
//   - NumberConnectedComponents / NodeConnectedComponent: the count, and the
//     component containing a given node.
//   - IsConnected: connectivity predicate; undefined on the null graph.
//   - BipartiteSets / IsBipartite: the two blocks of a connected bipartite
//     graph via breadth-first depth parity.
//
// How
//
//	Component queries run disjoint-set union (path compression, union by
//	rank) over the edge set: near-linear in V + E. The bipartition reuses
//	the bfs package; an edge between equal-parity depths certifies an odd
//	cycle.
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrDirected        for directed input (wraps core.ErrNotImplemented).
//   - ErrEmptyGraph      when connectivity is undefined (wraps core.ErrPointlessConcept).
//   - ErrDisconnected    when the bipartition is ambiguous (wraps core.ErrAmbiguousSolution).
//   - ErrNotBipartite    when an odd cycle exists.
//   - core.ErrNodeNotFound for component queries on absent nodes.
package components
