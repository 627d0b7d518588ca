// Package core: degree views.
package core

import (
	"fmt"
	"iter"
)

// degreeDirection selects which incident edges a DegreeView counts.
type degreeDirection uint8

const (
	degreeAll degreeDirection = iota // in + out (undirected: all incident)
	degreeIn                         // predecessors only
	degreeOut                        // successors only
)

// DegreeOption configures a DegreeView.
type DegreeOption func(*DegreeView)

// WithWeight makes the view sum the named numeric edge attribute instead
// of counting edge records. Edges lacking the attribute count as 1.
func WithWeight(attr string) DegreeOption {
	return func(dv *DegreeView) { dv.weight = attr }
}

// DegreeView is a live projection of node degrees. Lookups and iteration
// reflect the graph's state at the time of each access.
//
// Self-loops contribute 2 to the degree of their node (1 to in-degree and
// 1 to out-degree, when directed); parallel edges are counted (or summed)
// individually.
type DegreeView struct {
	g      *Graph
	dir    degreeDirection
	weight string // empty means unweighted counting
}

// Degree returns a live degree view. For directed graphs it reports
// in-degree + out-degree.
func (g *Graph) Degree(opts ...DegreeOption) DegreeView {
	return g.newDegreeView(degreeAll, opts)
}

// InDegree returns a live in-degree view. On undirected graphs InDegree
// and OutDegree both equal Degree.
func (g *Graph) InDegree(opts ...DegreeOption) DegreeView {
	return g.newDegreeView(degreeIn, opts)
}

// OutDegree returns a live out-degree view.
func (g *Graph) OutDegree(opts ...DegreeOption) DegreeView {
	return g.newDegreeView(degreeOut, opts)
}

func (g *Graph) newDegreeView(dir degreeDirection, opts []DegreeOption) DegreeView {
	dv := DegreeView{g: g, dir: dir}
	for _, opt := range opts {
		opt(&dv)
	}

	return dv
}

// Of returns the (optionally weighted) degree of id.
// Returns ErrNodeNotFound if the node is absent.
func (dv DegreeView) Of(id string) (float64, error) {
	if !dv.g.HasNode(id) {
		return 0, fmt.Errorf("core: node %q: %w", id, ErrNodeNotFound)
	}

	return dv.of(id), nil
}

// All iterates (id, degree) pairs in node insertion order.
func (dv DegreeView) All() iter.Seq2[string, float64] {
	return func(yield func(string, float64) bool) {
		for p := dv.g.nodes.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, dv.of(p.Key)) {
				return
			}
		}
	}
}

// of computes the degree of a node known to exist.
func (dv DegreeView) of(id string) float64 {
	g := dv.g
	if !g.directed {
		// Undirected: every incident edge appears exactly once in the
		// node's own atlas; self-loops count twice.
		return dv.sumAtlas(g.succ, id, true)
	}
	switch dv.dir {
	case degreeOut:
		return dv.sumAtlas(g.succ, id, false)
	case degreeIn:
		return dv.sumAtlas(g.pred, id, false)
	default:
		return dv.sumAtlas(g.succ, id, false) + dv.sumAtlas(g.pred, id, false)
	}
}

// sumAtlas totals the edge records of one adjacency slot, optionally
// double-counting self-loops.
func (dv DegreeView) sumAtlas(store *adjacency, id string, doubleLoops bool) float64 {
	a, ok := store.Get(id)
	if !ok {
		return 0
	}
	var total float64
	for p := a.Oldest(); p != nil; p = p.Next() {
		var pair float64
		if dv.weight == "" {
			pair = float64(p.Value.Len())
		} else {
			for bp := p.Value.Oldest(); bp != nil; bp = bp.Next() {
				pair += bp.Value.FloatOr(dv.weight, 1)
			}
		}
		if doubleLoops && p.Key == id {
			pair *= 2
		}
		total += pair
	}

	return total
}
