// Package core: sentinel errors shared by the graph model and the
// algorithm packages built on top of it.
//
// The algorithm packages (flow, bfs, components, ...) wrap these with
// package-qualified sentinels via fmt.Errorf("pkg: ...: %w", ...), so both
// errors.Is(err, core.ErrNodeNotFound) and errors.Is(err, pkg.ErrX) hold.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates an operation received an empty node ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge
	// (or, on multigraphs, a non-existent key of an existing edge).
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInvalidArgument indicates a structurally invalid argument, such as
	// an explicit edge key on a non-multigraph or source == sink in flow.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrAmbiguousSolution indicates an operation has more than one valid
	// answer for the given input and no disambiguating hint was supplied.
	ErrAmbiguousSolution = errors.New("core: ambiguous solution")

	// ErrPointlessConcept indicates an algorithm was invoked on a degenerate
	// input for which the concept is undefined (e.g. the null graph).
	ErrPointlessConcept = errors.New("core: pointless concept")

	// ErrNotImplemented indicates an algorithm requires a capability
	// (undirected-only, simple-graph-only) the given graph does not offer.
	ErrNotImplemented = errors.New("core: not implemented for this graph type")
)
