package dfs

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/luk036/xnetgo/core"
)

// DetectCycles inspects g for simple cycles reachable through DFS back
// edges and returns them in a canonical form: each cycle is a closed node
// sequence [v0, v1, ..., v0] rotated (and, on undirected graphs, possibly
// reversed) to its lexicographically minimal form, deduplicated, and the
// list sorted for deterministic output.
//
// Self-loops are reported as [v, v]. On undirected graphs the trivial
// two-node "cycle" along a single edge is not reported, but a pair of
// parallel edges on a multigraph is, as [u, v, u].
//
// Returns (false, nil, nil) for acyclic (or nil) input.
//
// Complexity: O(V + E + C·L) where C is the number of recorded cycles and
// L their average length.
func DetectCycles(g *core.Graph) (bool, [][]string, error) {
	if g == nil {
		return false, nil, nil
	}

	d := &cycleDetector{
		graph: g,
		state: make(map[string]int, g.NodeCount()),
		seen:  make(map[string]struct{}),
	}
	for id := range g.Nodes().All() {
		if d.state[id] == white {
			if err := d.visit(id, ""); err != nil {
				return false, nil, fmt.Errorf("dfs: detect cycles: %w", err)
			}
		}
	}

	sort.Slice(d.cycles, func(i, j int) bool {
		return strings.Join(d.cycles[i], ",") < strings.Join(d.cycles[j], ",")
	})
	if len(d.cycles) == 0 {
		return false, nil, nil
	}

	return true, d.cycles, nil
}

// cycleDetector carries the DFS state of one detection run.
type cycleDetector struct {
	graph  *core.Graph
	state  map[string]int
	path   []string // current recursion stack
	seen   map[string]struct{}
	cycles [][]string
}

// visit explores id depth-first, recording a cycle for every back edge.
func (d *cycleDetector) visit(id, parent string) error {
	d.state[id] = gray
	d.path = append(d.path, id)

	adj, err := d.graph.Adj(id)
	if err != nil {
		return err
	}
	for nbr := range adj.Neighbors() {
		if nbr == id {
			// Self-loop: a one-node cycle.
			d.record([]string{id, id})
			continue
		}
		if nbr == parent && !d.graph.IsDirected() {
			// The edge back to the parent is not a cycle, unless parallel
			// edges make the pair a genuine two-node cycle.
			if d.graph.IsMultigraph() && parallelRecords(adj, nbr) > 1 {
				d.record([]string{id, nbr, id})
			}
			continue
		}
		switch d.state[nbr] {
		case white:
			if err := d.visit(nbr, id); err != nil {
				return err
			}
		case gray:
			idx := slices.Index(d.path, nbr)
			segment := len(d.path) - idx
			if segment == 2 && !d.graph.IsDirected() {
				continue // single undirected edge, not a cycle
			}
			closed := append(slices.Clone(d.path[idx:]), nbr)
			d.record(closed)
		}
	}

	d.path = d.path[:len(d.path)-1]
	d.state[id] = black

	return nil
}

// record canonicalizes a closed cycle and stores it unless an equivalent
// one was already seen.
func (d *cycleDetector) record(closed []string) {
	canon := canonicalCycle(closed, !d.graph.IsDirected())
	sig := strings.Join(canon, ",")
	if _, dup := d.seen[sig]; dup {
		return
	}
	d.seen[sig] = struct{}{}
	d.cycles = append(d.cycles, canon)
}

// canonicalCycle rewrites the closed sequence [v0..v0] to start at its
// lexicographically minimal rotation; for undirected cycles the reversed
// orientation competes too, since both describe the same cycle.
func canonicalCycle(closed []string, undirected bool) []string {
	base := closed[:len(closed)-1]
	best := minimalRotation(base)
	if undirected {
		reversed := slices.Clone(base)
		slices.Reverse(reversed)
		if alt := minimalRotation(reversed); slices.Compare(alt, best) < 0 {
			best = alt
		}
	}

	return append(best, best[0])
}

// minimalRotation returns the lexicographically minimal rotation of s using
// Booth's algorithm. O(n).
func minimalRotation(s []string) []string {
	n := len(s)
	doubled := append(slices.Clone(s), s...)
	fail := make([]int, 2*n)
	for i := range fail {
		fail[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := fail[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = fail[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			fail[j-k] = -1
		} else {
			fail[j-k] = i + 1
		}
	}

	return slices.Clone(doubled[k : k+n])
}

// parallelRecords counts the edge records between the viewed node and nbr.
func parallelRecords(adj core.AtlasView, nbr string) int {
	var count int
	for e := range adj.Edges() {
		if e.V == nbr {
			count++
		}
	}

	return count
}
