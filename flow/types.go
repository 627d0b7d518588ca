// Package flow: options, sentinel errors, and residual-network attribute
// names shared by all max-flow routines.
package flow

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/luk036/xnetgo/core"
)

// Attribute names used on residual networks. Arc-level "capacity" and
// "flow" live on every residual arc; "inf", "flow_value", and "algorithm"
// are graph-level attributes of R.
const (
	// DefaultCapacityAttr is the edge attribute read from the input graph
	// when no WithCapacityAttr option is given. Edges lacking the
	// attribute are treated as having infinite capacity.
	DefaultCapacityAttr = "capacity"

	// CapacityAttr is the residual capacity attribute on arcs of R.
	CapacityAttr = "capacity"

	// FlowAttr is the flow attribute on arcs of R, satisfying
	// R[u][v].flow == -R[v][u].flow at all times.
	FlowAttr = "flow"

	// InfAttr is the graph attribute of R holding the finite surrogate
	// for infinite capacity.
	InfAttr = "inf"

	// FlowValueAttr is the graph attribute of R holding the total flow
	// into the sink after a computation.
	FlowValueAttr = "flow_value"

	// AlgorithmAttr is the graph attribute of R naming the algorithm that
	// produced it.
	AlgorithmAttr = "algorithm"
)

// Sentinel errors for the flow subsystem. Errors that instantiate the core
// taxonomy wrap the corresponding core sentinel, so callers may match
// either level.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("flow: graph is nil")

	// ErrMultigraph is returned when a multigraph is passed; residual
	// networks are defined over simple graphs only.
	ErrMultigraph = fmt.Errorf("flow: multigraphs not supported: %w", core.ErrNotImplemented)

	// ErrDirected is returned by GomoryHuTree for directed input.
	ErrDirected = fmt.Errorf("flow: directed graphs not supported: %w", core.ErrNotImplemented)

	// ErrSourceNotFound is returned when the source node is absent.
	ErrSourceNotFound = fmt.Errorf("flow: source %w", core.ErrNodeNotFound)

	// ErrSinkNotFound is returned when the sink node is absent.
	ErrSinkNotFound = fmt.Errorf("flow: sink %w", core.ErrNodeNotFound)

	// ErrSameSourceSink is returned when source == sink.
	ErrSameSourceSink = fmt.Errorf("flow: source and sink are the same node: %w", core.ErrInvalidArgument)

	// ErrUnbounded is returned when an infinite-capacity s-t path exists;
	// the maximum flow is unbounded above.
	ErrUnbounded = errors.New("flow: infinite capacity path, flow unbounded above")

	// ErrEmptyGraph is returned by GomoryHuTree for the null graph, which
	// has no Gomory-Hu tree representation.
	ErrEmptyGraph = fmt.Errorf("flow: empty graph: %w", core.ErrPointlessConcept)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("flow: invalid option supplied")
)

// FlowFunc is the signature shared by max-flow routines that operate on a
// residual network: EdmondsKarp and any future implementation. MinimumCut
// and GomoryHuTree accept one via WithFlowFunc.
type FlowFunc func(g *core.Graph, s, t string, opts ...Option) (*core.Graph, error)

// Option configures a flow computation via functional arguments. An
// invalid Option is recorded internally and surfaced as ErrOptionViolation
// when the computation is invoked.
type Option func(*Options)

// Options holds parameters shared by the flow routines.
type Options struct {
	// Ctx allows cancellation between augmentations. The primary
	// early-termination primitive remains Cutoff.
	Ctx context.Context

	// CapacityAttr names the edge attribute holding capacities on the
	// input graph. Absent attributes mean infinite capacity.
	CapacityAttr string

	// Residual, if non-nil, is reused instead of building a fresh
	// residual network: its topology is kept and its flow is reset to
	// zero at the start of the computation. Intended for algorithms that
	// run many flow computations against a slowly-changing graph.
	Residual *core.Graph

	// Cutoff stops augmentation once the accumulated flow reaches it.
	// Defaults to +Inf (run to the true maximum).
	Cutoff float64

	// FlowFunc performs the underlying flow computations for MinimumCut
	// and GomoryHuTree. Defaults to EdmondsKarp.
	FlowFunc FlowFunc

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Background context, the "capacity"
// attribute, no residual reuse, and no cutoff.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		CapacityAttr: DefaultCapacityAttr,
		Cutoff:       math.Inf(1),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCapacityAttr names the capacity attribute on the input graph.
func WithCapacityAttr(name string) Option {
	return func(o *Options) {
		if name == "" {
			o.err = fmt.Errorf("%w: capacity attribute name is empty", ErrOptionViolation)
			return
		}
		o.CapacityAttr = name
	}
}

// WithResidual reuses an existing residual network (flow is reset, the
// topology is kept).
func WithResidual(r *core.Graph) Option {
	return func(o *Options) { o.Residual = r }
}

// WithCutoff stops the computation once the flow value reaches c.
func WithCutoff(c float64) Option {
	return func(o *Options) {
		if math.IsNaN(c) {
			o.err = fmt.Errorf("%w: cutoff is NaN", ErrOptionViolation)
			return
		}
		o.Cutoff = c
	}
}

// WithFlowFunc selects the routine used for the underlying flow
// computations of MinimumCut and GomoryHuTree.
func WithFlowFunc(fn FlowFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.FlowFunc = fn
		}
	}
}

// buildOptions folds the caller's options over the defaults and surfaces
// any recorded option error.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// FlowValue returns the total flow recorded on a residual network by the
// last computation, or 0 when none has run.
func FlowValue(r *core.Graph) float64 {
	return r.Graph().FloatOr(FlowValueAttr, 0)
}

// ResidualInf returns the finite infinite-capacity surrogate of r.
func ResidualInf(r *core.Graph) float64 {
	return r.Graph().FloatOr(InfAttr, 0)
}
