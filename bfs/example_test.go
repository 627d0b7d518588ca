package bfs_test

import (
	"fmt"

	"github.com/luk036/xnetgo/bfs"
	"github.com/luk036/xnetgo/core"
)

// ExampleBFS walks a 3x3 lattice from the top-left corner. Each frontier
// layer holds the cells at the same Manhattan distance from the start.
func ExampleBFS() {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				_, _ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1))
			}
			if i+1 < 3 {
				_, _ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j))
			}
		}
	}

	res, err := bfs.BFS(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleBFSResult_PathTo picks the fewest-hop route when two routes
// compete: A-B-C-D-K in four hops against A-E-F-K in three.
func ExampleBFSResult_PathTo() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("C", "D")
	_, _ = g.AddEdge("D", "K")
	_, _ = g.AddEdge("A", "E")
	_, _ = g.AddEdge("E", "F")
	_, _ = g.AddEdge("F", "K")

	res, err := bfs.BFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, err := res.PathTo("K")
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	fmt.Println(path)
	// Output: [A E F K]
}

// ExampleWithMaxDepth caps the walk at two hops along a ten-node chain.
func ExampleWithMaxDepth() {
	g := core.NewGraph()
	for i := 0; i < 9; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}

	res, err := bfs.BFS(g, "v0", bfs.WithMaxDepth(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output: [v0 v1 v2]
}

// ExampleWithFilterNeighbor prunes one arc of a directed graph so the
// walk never reaches the node behind it.
func ExampleWithFilterNeighbor() {
	g := core.NewDiGraph()
	_, _ = g.AddEdge("U", "V")
	_, _ = g.AddEdge("V", "W")
	_, _ = g.AddEdge("W", "X")
	_, _ = g.AddEdge("W", "Z")
	_, _ = g.AddEdge("X", "Y")

	res, err := bfs.BFS(g, "U", bfs.WithFilterNeighbor(func(cur, nbr string) bool {
		return nbr != "Z"
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output: [U V W X Y]
}
