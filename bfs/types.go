package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/luk036/xnetgo/core"
)

var (
	// ErrGraphNil is returned when the graph pointer is nil.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNodeNotFound is returned when startID is absent. Wraps
	// core.ErrNodeNotFound so callers can match on the core taxonomy.
	ErrStartNodeNotFound = fmt.Errorf("bfs: start %w", core.ErrNodeNotFound)

	// ErrOptionViolation is returned when an option carries an invalid
	// value, such as a negative depth limit.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option mutates BFSOptions. A bad value is remembered and surfaced as
// ErrOptionViolation when BFS runs, never at construction time.
type Option func(*BFSOptions)

// BFSOptions collects the knobs of one traversal.
type BFSOptions struct {
	// Ctx cancels the walk between node visits.
	Ctx context.Context

	// OnEnqueue fires when a node joins the frontier, with its depth.
	OnEnqueue func(id string, depth int)

	// OnDequeue fires when a node leaves the frontier, before OnVisit.
	OnDequeue func(id string, depth int)

	// OnVisit fires per visited node; a non-nil return aborts the walk.
	OnVisit func(id string, depth int) error

	// MaxDepth caps the exploration depth when positive. Zero means no
	// limit.
	MaxDepth int

	// FilterNeighbor prunes the edge cur->nbr when it returns false.
	FilterNeighbor func(cur, nbr string) bool

	err error
}

// DefaultOptions returns the zero-surprise configuration: background
// context, no depth cap, every neighbor admitted, no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(string, int) {},
		OnDequeue:      func(string, int) {},
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(string, string) bool { return true },
	}
}

// WithContext attaches ctx for cancellation and deadlines.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers the enqueue hook.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers the dequeue hook.
func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers the visit hook; its error aborts the traversal.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits exploration to depth d. Zero restores the default
// unlimited behavior; a negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor installs an edge predicate; edges it rejects are
// never crossed.
func WithFilterNeighbor(fn func(cur, nbr string) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult is the outcome of one traversal. Order lists nodes in visit
// sequence; Depth maps every reached node to its hop distance from the
// start; Parent maps every reached node except the start to its
// predecessor in the search tree.
type BFSResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo walks Parent links back from dest and returns the start-to-dest
// path. Fails when dest was never reached.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := []string{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
