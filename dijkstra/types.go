// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source node to all
// other reachable nodes in a graph with non-negative edge weights.
// The algorithm maintains a priority queue of nodes to explore and
// relaxes edges in increasing order of distance from the source node.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |nodes|, E = |edges|
//	   • Each node is extracted from the priority queue at most once (V extracts).
//	   • Each edge relaxation may push into the priority queue (up to E pushes).
//	   • Each heap operation (push/pop) costs O(log V) or O(log (V+E)), simplified to O(log V).
//	– Space: O(V + E)
//	   • O(V) to store distance and predecessor maps.
//	   • O(E) in the priority queue in the worst case (lazy decrease-key).
//
// Options:
//
//	– Source:           ID of the starting node (must be non-empty and present in the graph).
//	– WeightAttr:       edge attribute holding weights; absent attributes count as 1.
//	– ReturnPath:       if true, return the predecessor map for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; nodes beyond this are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrSourceNotFound  if the source node does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
//
// Example usage:
//
//	// Compute distances and predecessors from "A":
//	dist, prev, err := Dijkstra(
//	    g,
//	    Source("A"),
//	    WithReturnPath(),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Distance to B: %v, parent: %s\n", dist["B"], prev["B"])
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/luk036/xnetgo/core"
)

// DefaultWeightAttr is the edge attribute read when no WithWeightAttr
// option is given. Edges lacking the attribute count as weight 1.
const DefaultWeightAttr = "weight"

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source node ID is empty.
	ErrEmptySource = errors.New("dijkstra: source node ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates that the specified source node does not
	// exist in the provided graph.
	ErrSourceNotFound = fmt.Errorf("dijkstra: source %w", core.ErrNodeNotFound)

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrBadWeightAttr indicates that an empty weight attribute name was supplied.
	ErrBadWeightAttr = errors.New("dijkstra: weight attribute name is empty")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting node ID (must be non-empty and present in the graph).
// WeightAttr       – edge attribute holding weights; absent attributes count as 1.
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – optional cap on distances to explore (nodes beyond are skipped).
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	Source           string  // The ID of the source node
	WeightAttr       string  // Edge attribute holding weights
	ReturnPath       bool    // Whether to return the predecessor map
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold above which edges are non-traversable

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting node ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithWeightAttr names the edge attribute read as weight.
// An empty name causes ErrBadWeightAttr when Dijkstra is invoked.
func WithWeightAttr(name string) Option {
	return func(o *Options) {
		if name == "" {
			o.err = ErrBadWeightAttr
			return
		}
		o.WeightAttr = name
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If false (default), the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values cause ErrBadMaxDistance
// when Dijkstra is invoked.
// Default (if not set) is +Inf (no cap).
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = ErrBadMaxDistance
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable (treated as infinite weight).
// Edges with weight ≥ threshold are skipped entirely.
// Must pass a positive value; zero or negative cause ErrBadInfThreshold
// when Dijkstra is invoked.
// Default (if not set) is +Inf (no edges treated as impassable).
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			o.err = ErrBadInfThreshold
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source node ID. Use this as a starting point for further
// functional-options overrides.
//
// Defaults:
//   - Source:           <as passed> (no validation here; validated in Dijkstra).
//   - WeightAttr:       "weight" (absent attributes count as 1).
//   - ReturnPath:       false (predecessor map not returned).
//   - MaxDistance:      +Inf (no distance limit; explore all reachable).
//   - InfEdgeThreshold: +Inf (no edges treated as impassable).
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		WeightAttr:       DefaultWeightAttr,
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
