// Package xnetgo is an in-memory graph library: one Graph type covering
// the four classic variants, plus algorithm packages built on top of it.
//
// 🚀 What is xnetgo?
//
//	A library for building and analyzing graphs with attribute-rich
//	nodes and edges:
//		• Core model: undirected/directed × simple/multi, insertion-ordered,
//		  with shared attribute dictionaries between mirror adjacency slots
//		• Live views: nodes, edges, adjacency, degrees, induced subgraphs
//		• Traversal: BFS with hooks, depth limits, and neighbor filters
//		• Connectivity: connected components (union-find), bipartite sets
//		• Shortest paths: Dijkstra over a weight attribute
//		• Flow: residual networks, Edmonds–Karp, minimum cuts, Gomory–Hu trees
//		• Generators: classic families and famous social networks
//
// ✨ Why choose xnetgo?
//
//   - Deterministic – every iteration follows insertion order, so runs
//     reproduce exactly
//   - Attribute-first – graph, node, and edge data live in ordered
//     dictionaries shared by reference, never copied behind your back
//   - Explicit errors – sentinel errors wrap a small core taxonomy, so
//     errors.Is works at either level
//
// Everything is organized under focused subpackages:
//
//	core/       — the Graph type, attributes, views, subgraphs, conversion
//	bfs/        — breadth-first traversal with hooks and filters
//	components/ — connected components and bipartite decomposition
//	dijkstra/   — single-source shortest paths
//	flow/       — max-flow, min-cut, and Gomory–Hu cut trees
//	generators/ — path/cycle/complete/star builders and social networks
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	represents a square with four nodes and four edges.
//
// Dive into the package docs for runnable examples of each area.
//
//	go get github.com/luk036/xnetgo
package xnetgo
