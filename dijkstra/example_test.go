// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt" // fmt is used to print results in examples

	"github.com/luk036/xnetgo/core"
	"github.com/luk036/xnetgo/dijkstra"
)

// ExampleDijkstra_triangle demonstrates computing shortest paths on a simple triangle graph.
// Complexity: O((V+E) log V) because we push/pop up to E entries and extract each node once.
func ExampleDijkstra_triangle() {
	// 1) Create a new undirected graph; weights live in the "weight" edge attribute.
	g := core.NewGraph()
	// 2) Add an undirected edge A—B with weight=1.
	_, _ = g.AddEdge("A", "B", core.WithEdgeAttr("weight", 1.0))
	// 3) Add an undirected edge B—C with weight=2.
	_, _ = g.AddEdge("B", "C", core.WithEdgeAttr("weight", 2.0))
	// 4) Add an undirected edge A—C with weight=5.
	_, _ = g.AddEdge("A", "C", core.WithEdgeAttr("weight", 5.0))

	// 5) Compute Dijkstra from source "A" without requesting the predecessor map.
	//    We call dijkstra.Source("A") to set the Source field; no WithReturnPath() means prev==nil.
	dist, _, err := dijkstra.Dijkstra(
		g,
		dijkstra.Source("A"),
	)
	// 6) Handle any potential error (e.g., empty source or missing node).
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 7) Print distances to A, B, and C.
	//    dist["A"] should be 0, dist["B"] should be 1, dist["C"] should be 3 (via A→B→C).
	fmt.Printf("dist[A]=%v, dist[B]=%v, dist[C]=%v\n", dist["A"], dist["B"], dist["C"])
	// Output: dist[A]=0, dist[B]=1, dist[C]=3
}

// ExampleDijkstra_mediumGraph demonstrates path reconstruction on a slightly larger graph.
// We show how to use WithReturnPath() to obtain the predecessor (prev) map.
// Complexity: O((V+E) log V).
func ExampleDijkstra_mediumGraph() {
	// 1) Create a new directed graph.
	g := core.NewDiGraph()
	// 2) Add directed edge A→B weight=2.
	_, _ = g.AddEdge("A", "B", core.WithEdgeAttr("weight", 2.0))
	// 3) Add directed edge A→C weight=1.
	_, _ = g.AddEdge("A", "C", core.WithEdgeAttr("weight", 1.0))
	// 4) Add directed edge C→B weight=1.
	_, _ = g.AddEdge("C", "B", core.WithEdgeAttr("weight", 1.0))
	// 5) Add directed edge B→D weight=3.
	_, _ = g.AddEdge("B", "D", core.WithEdgeAttr("weight", 3.0))
	// 6) Add directed edge C→D weight=5.
	_, _ = g.AddEdge("C", "D", core.WithEdgeAttr("weight", 5.0))

	// 7) Run Dijkstra from source "A", requesting the predecessor map via WithReturnPath().
	dist, prev, err := dijkstra.Dijkstra(
		g,
		dijkstra.Source("A"),
		dijkstra.WithReturnPath(),
	)
	// 8) Handle potential errors.
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 9) Print the distance to "D" and its immediate predecessor.
	//    The shortest path to D is A→C→B→D with total cost 1+1+3 = 5.
	fmt.Printf("dist[D]=%v, prev[D]=%s\n", dist["D"], prev["D"])
	// Output: dist[D]=5, prev[D]=B
}

// ExampleDijkstra_thresholds demonstrates how to use InfEdgeThreshold and MaxDistance
// to impose “walls” and distance caps. If an edge weight ≥ threshold, we treat it as impassable.
// Complexity: O((V+E) log V).
func ExampleDijkstra_thresholds() {
	// 1) Create a new undirected graph.
	g := core.NewGraph()
	// 2) Add an edge A—B weight=2.
	_, _ = g.AddEdge("A", "B", core.WithEdgeAttr("weight", 2.0))
	// 3) Add an edge B—C weight=4.
	_, _ = g.AddEdge("B", "C", core.WithEdgeAttr("weight", 4.0))
	// 4) Add an edge A—C weight=10.
	_, _ = g.AddEdge("A", "C", core.WithEdgeAttr("weight", 10.0))

	// 5) Define a threshold = 5. Any edge with weight ≥5 is skipped.
	threshold := 5.0
	// 6) Run Dijkstra from "A" with InfEdgeThreshold=5.
	//    This causes the direct edge A—C (weight=10) to be ignored.
	dist, _, err := dijkstra.Dijkstra(
		g,
		dijkstra.Source("A"),
		dijkstra.WithInfEdgeThreshold(threshold),
	)
	// 7) Handle any errors.
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 8) Now the only path from A→C goes A→B→C = 2 + 4 = 6.
	fmt.Printf("dist[C]=%v\n", dist["C"])
	// Output: dist[C]=6
}

// ExampleDijkstra_houseGraph shows Dijkstra on a small undirected graph.
// Expected: the shortest costs to D and E from A.
func ExampleDijkstra_houseGraph() {
	// Source graph g:
	//	    (E)
	//	  3/   \4
	//	  /     \
	//	(C)──10─(D)
	//	 |       |
	//	2|       |5
	//	 |       |
	//	(A)──4──(B)
	g := core.NewGraph()
	for _, e := range []struct {
		U, V string
		W    float64
	}{
		{"A", "B", 4},
		{"A", "C", 2},
		{"B", "D", 5},
		{"C", "D", 10},
		{"C", "E", 3},
		{"E", "D", 4},
	} {
		_, _ = g.AddEdge(e.U, e.V, core.WithEdgeAttr("weight", e.W))
	}
	dist, _, _ := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	fmt.Printf("dist[D]=%v dist[E]=%v\n", dist["D"], dist["E"])
	// Output: dist[D]=9 dist[E]=5
}
