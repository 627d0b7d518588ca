// Package core provides the in-memory graph data model: the Graph type,
// its insertion-ordered adjacency store, and live read-only views.
//
// The Graph G = (V,E) covers four fixed variants through one type over two
// orthogonal axes:
//
//   - NewGraph: undirected, simple
//   - NewDiGraph: directed, simple
//   - NewMultiGraph: undirected, parallel edges (integer keys)
//   - NewMultiDiGraph: directed, parallel edges (integer keys)
//
// Nodes are string IDs carrying an Attrs dictionary; edges carry their own
// shared Attrs dictionary. Attributes at every level are insertion-ordered
// mappings from names to arbitrary values.
//
// # Aliasing invariants
//
// The edge attribute dictionary is heap-allocated once per edge and
// referenced from both adjacency slots of the endpoint pair:
//
//   - Undirected: succ[u][v] and succ[v][u] hold the identical bucket, so
//     mutating the attrs reached via either orientation is observed
//     through the other.
//   - Directed: succ[u][v] and pred[v][u] hold the identical bucket.
//
// Removing a node removes every edge mentioning it from both sides of the
// store; no dangling references survive any mutation.
//
// # Views
//
// Nodes(), Edges(), Degree(), Adj(), and Subgraph() return live,
// non-copying projections: obtaining one is O(1) and it observes all later
// mutations (Subgraph freezes membership but keeps attribute reads live).
// Iteration follows insertion order, never hash layout, which several
// algorithms rely on for reproducible tie-breaking. Mutating the graph during an active iteration over a view
// is undefined behavior; the no-mutation-during-iteration contract is the
// caller's responsibility.
//
// # Permissive edge insertion
//
// AddEdge silently creates endpoints that are not yet present. This
// supports incremental construction but can mask typos; callers that want
// strict validation must check HasNode first. All other absences are hard
// errors (ErrNodeNotFound, ErrEdgeNotFound); the model never recovers
// internally from an error condition.
//
// # Concurrency
//
// The model is single-threaded and synchronous: a Graph and its views
// assume one logical owner at a time. Multiple read-only views may coexist
// as long as no mutation occurs during their traversal.
package core
