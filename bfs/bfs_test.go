package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luk036/xnetgo/bfs"
	"github.com/luk036/xnetgo/core"
)

func TestBFS_Errors(t *testing.T) {
	require := require.New(t)
	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	require.ErrorIs(err, bfs.ErrStartNodeNotFound)
	require.ErrorIs(err, core.ErrNodeNotFound)

	_ = g.AddNode("A")
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	require.ErrorIs(err, bfs.ErrOptionViolation)
}

func TestBFS_SingleNode(t *testing.T) {
	require := require.New(t)
	g := core.NewGraph()
	_ = g.AddNode("A")

	res, err := bfs.BFS(g, "A")
	require.NoError(err)
	require.Equal([]string{"A"}, res.Order)
	require.Equal(0, res.Depth["A"])
	require.Empty(res.Parent)
}

func TestBFS_CycleDepths(t *testing.T) {
	require := require.New(t)
	// Square A-B-C-D-A; from A the far corner C sits two hops away.
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("C", "D")
	_, _ = g.AddEdge("D", "A")

	res, err := bfs.BFS(g, "A")
	require.NoError(err)
	require.Equal([]string{"A", "B", "D", "C"}, res.Order, "neighbors in edge insertion order")
	require.Equal(map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)
}

func TestBFS_StaysInComponent(t *testing.T) {
	require := require.New(t)
	g := core.NewGraph()
	_, _ = g.AddEdge("X", "Y")
	_, _ = g.AddEdge("P", "Q")

	res, err := bfs.BFS(g, "X")
	require.NoError(err)
	require.Equal([]string{"X", "Y"}, res.Order)
	require.NotContains(res.Depth, "P")
}

func TestBFS_DirectedFollowsOutEdges(t *testing.T) {
	require := require.New(t)
	dg := core.NewDiGraph()
	_, _ = dg.AddEdge("A", "B")
	_, _ = dg.AddEdge("C", "A") // inbound arc, invisible from A

	res, err := bfs.BFS(dg, "A")
	require.NoError(err)
	require.Equal([]string{"A", "B"}, res.Order)
}

func TestBFS_MaxDepth(t *testing.T) {
	require := require.New(t)
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(1))
	require.NoError(err)
	require.Equal([]string{"A", "B"}, res.Order)

	res, err = bfs.BFS(g, "A", bfs.WithMaxDepth(0))
	require.NoError(err)
	require.Equal([]string{"A", "B", "C"}, res.Order, "zero means no limit")

	res, err = bfs.BFS(g, "A", bfs.WithMaxDepth(10))
	require.NoError(err)
	require.Equal([]string{"A", "B", "C"}, res.Order)
}

func TestBFS_FilterNeighbor(t *testing.T) {
	require := require.New(t)
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")

	res, err := bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(cur, nbr string) bool {
		return !(cur == "B" && nbr == "C")
	}))
	require.NoError(err)
	require.Equal([]string{"A", "B"}, res.Order)
}

func TestBFS_SelfLoopAndParallelDedup(t *testing.T) {
	require := require.New(t)
	mg := core.NewMultiGraph()
	_, _ = mg.AddEdge("A", "A")
	_, _ = mg.AddEdge("A", "B")
	_, _ = mg.AddEdge("A", "B")

	res, err := bfs.BFS(mg, "A")
	require.NoError(err)
	require.Equal([]string{"A", "B"}, res.Order, "loops and parallels enqueue once")
}

func TestBFS_HookSequence(t *testing.T) {
	require := require.New(t)
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")

	record := func(dst *[]string) func(string, int) {
		return func(id string, d int) { *dst = append(*dst, fmt.Sprintf("%s@%d", id, d)) }
	}
	var enq, deq, vis []string
	_, err := bfs.BFS(g, "A",
		bfs.WithOnEnqueue(record(&enq)),
		bfs.WithOnDequeue(record(&deq)),
		bfs.WithOnVisit(func(id string, d int) error {
			vis = append(vis, fmt.Sprintf("%s@%d", id, d))
			return nil
		}),
	)
	require.NoError(err)
	want := []string{"A@0", "B@1", "C@2"}
	require.Equal(want, enq)
	require.Equal(want, deq)
	require.Equal(want, vis)
}

func TestBFS_VisitHookAborts(t *testing.T) {
	require := require.New(t)
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")

	boom := errors.New("boom")
	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return boom
		}

		return nil
	}))
	require.ErrorIs(err, boom)
}

func TestBFS_PathTo(t *testing.T) {
	require := require.New(t)
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_ = g.AddNode("island")

	res, err := bfs.BFS(g, "A")
	require.NoError(err)

	path, err := res.PathTo("C")
	require.NoError(err)
	require.Equal([]string{"A", "B", "C"}, path)

	path, err = res.PathTo("A")
	require.NoError(err)
	require.Equal([]string{"A"}, path, "trivial path to the start")

	_, err = res.PathTo("island")
	require.Error(err)
}

func TestBFS_Cancellation(t *testing.T) {
	require := require.New(t)
	g := core.NewGraph()
	for i := 0; i < 100; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(g, "v0", bfs.WithContext(ctx))
	require.ErrorIs(err, context.Canceled)
}

func TestBFS_ConcurrentReads(t *testing.T) {
	require := require.New(t)
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")

	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := bfs.BFS(g, "A")
			errs <- err
		}()
	}
	for i := 0; i < 2; i++ {
		require.NoError(<-errs)
	}
}
