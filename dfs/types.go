// Package dfs: options, sentinel errors, and the traversal result type.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/luk036/xnetgo/core"
)

// Node visitation states of the three-color scheme shared by the traversal,
// topological sort, and cycle detection.
const (
	white = iota // not yet visited
	gray         // on the recursion stack
	black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates the start node ID does not exist.
	ErrStartNodeNotFound = fmt.Errorf("dfs: start %w", core.ErrNodeNotFound)

	// ErrCycleDetected indicates TopologicalSort encountered a back edge.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrRequiresDigraph is returned by TopologicalSort for undirected input.
	ErrRequiresDigraph = fmt.Errorf("dfs: topological sort requires a directed graph: %w", core.ErrNotImplemented)
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, startID, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked after all descendants of a node have
	// been explored (post-order), before it is appended to Order.
	// Returning an error aborts traversal.
	OnExit func(id string) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is consulted before descending the edge
	// from cur to nbr; return false to skip that neighbor.
	FilterNeighbor func(cur, nbr string) bool

	// FullTraversal, if true, restarts DFS from every unvisited node in
	// insertion order, covering disconnected components (forest traversal).
	FullTraversal bool
}

// DefaultOptions returns DFSOptions with a Background context, no hooks,
// no depth limit, no filtering, and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the context used for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit installs fn as the post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth. A limit of 0 visits only the start
// node; a negative limit means no limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) { o.MaxDepth = limit }
}

// WithFilterNeighbor installs a neighbor predicate; edges for which fn
// returns false are not descended.
func WithFilterNeighbor(fn func(cur, nbr string) bool) Option {
	return func(o *DFSOptions) { o.FilterNeighbor = fn }
}

// WithFullTraversal enables forest traversal over every component.
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []string

	// Depth maps each visited node to its discovery depth from the root of
	// its DFS tree.
	Depth map[string]int

	// Parent maps each visited node to the node it was discovered from.
	// Tree roots do not appear.
	Parent map[string]string

	// Visited flags the nodes reached by the traversal.
	Visited map[string]bool
}
