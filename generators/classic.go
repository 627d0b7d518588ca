// Package generators builds well-known graphs: classic parametric
// families and famous social networks. Node IDs are decimal strings
// ("0", "1", ...) so the results plug directly into the rest of the
// library.
package generators

import (
	"errors"
	"strconv"

	"github.com/luk036/xnetgo/core"
)

// ErrNegativeSize is returned when a generator is asked for a negative
// number of nodes.
var ErrNegativeSize = errors.New("generators: number of nodes must be non-negative")

// PathGraph returns the path P_n: nodes "0".."n-1" joined in a line.
// Variant options pass through to the core constructor, so
// PathGraph(5, core.WithDirected(true)) yields a directed path.
func PathGraph(n int, opts ...core.GraphOption) (*core.Graph, error) {
	g, err := emptyGraph(n, opts)
	if err != nil {
		return nil, err
	}
	for i := 0; i+1 < n; i++ {
		if _, err := g.AddEdge(label(i), label(i+1)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// CycleGraph returns the cycle C_n: the path P_n closed into a ring.
// C_1 is a single self-loop; on simple graphs C_2 collapses to one edge.
func CycleGraph(n int, opts ...core.GraphOption) (*core.Graph, error) {
	g, err := emptyGraph(n, opts)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if _, err := g.AddEdge(label(i), label((i+1)%n)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// CompleteGraph returns K_n: every pair of distinct nodes joined by an
// edge. On directed graphs both arcs are present.
func CompleteGraph(n int, opts ...core.GraphOption) (*core.Graph, error) {
	g, err := emptyGraph(n, opts)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if !g.IsDirected() && j < i {
				continue
			}
			if _, err := g.AddEdge(label(i), label(j)); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// StarGraph returns S_n: the hub "0" joined to the n leaves "1".."n",
// n+1 nodes in total.
func StarGraph(n int, opts ...core.GraphOption) (*core.Graph, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	g := core.NewGraph(opts...)
	if err := g.AddNode(label(0)); err != nil {
		return nil, err
	}
	for i := 1; i <= n; i++ {
		if _, err := g.AddEdge(label(0), label(i)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// emptyGraph allocates a graph of the requested variant holding the
// nodes "0".."n-1" and no edges.
func emptyGraph(n int, opts []core.GraphOption) (*core.Graph, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	g := core.NewGraph(opts...)
	for i := 0; i < n; i++ {
		if err := g.AddNode(label(i)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// label converts a node index to its string ID.
func label(i int) string {
	return strconv.Itoa(i)
}
