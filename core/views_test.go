package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/luk036/xnetgo/core"
)

type ViewsSuite struct {
	suite.Suite
}

func (s *ViewsSuite) TestNodeViewLiveness() {
	require := require.New(s.T())
	g := core.NewGraph()
	nv := g.Nodes()
	require.Equal(0, nv.Len())

	require.NoError(g.AddNodesFrom("A", "B"))
	require.Equal(2, nv.Len(), "views observe later mutations")
	require.True(nv.Contains("A"))
}

func (s *ViewsSuite) TestNodeViewData() {
	require := require.New(s.T())
	g := core.NewGraph()
	_ = g.AddNode("A", core.WithNodeAttr("color", "red"))
	_ = g.AddNode("B")

	got := map[string]any{}
	for id, v := range g.Nodes().Data("color", "none") {
		got[id] = v
	}
	require.Equal(map[string]any{"A": "red", "B": "none"}, got)
}

func (s *ViewsSuite) TestNodeViewSetAlgebra() {
	require := require.New(s.T())
	g := core.NewGraph()
	_ = g.AddNodesFrom("A", "B", "C")
	other := core.NodeSet{"B": {}, "D": {}}

	require.Equal(core.NodeSet{"A": {}, "B": {}, "C": {}, "D": {}}, g.Nodes().Union(other))
	require.Equal(core.NodeSet{"B": {}}, g.Nodes().Intersect(other))
	require.Equal(core.NodeSet{"A": {}, "C": {}}, g.Nodes().Difference(other))
}

func (s *ViewsSuite) TestEdgeViewOrderUndirected() {
	require := require.New(s.T())
	g := core.NewGraph()
	_, _ = g.AddEdge("B", "A")
	_, _ = g.AddEdge("A", "C")
	_, _ = g.AddEdge("C", "B")

	var got []core.Edge
	for e := range g.Edges().All() {
		got = append(got, e)
	}
	// Reported once each, from the endpoint inserted first: B first.
	require.Equal([]core.Edge{
		{U: "B", V: "A"},
		{U: "B", V: "C"},
		{U: "A", V: "C"},
	}, got)
	require.Equal(3, g.Edges().Count())
}

func (s *ViewsSuite) TestEdgeViewAllRecordsOnMulti() {
	require := require.New(s.T())
	mg := core.NewMultiGraph()
	_, _ = mg.AddEdge("A", "B")
	_, _ = mg.AddEdge("A", "B")
	_, _ = mg.AddEdge("A", "A") // self-loop appears once

	var keys []int
	for e := range mg.Edges().All() {
		keys = append(keys, e.Key)
	}
	require.Equal([]int{0, 1, 0}, keys)
}

func (s *ViewsSuite) TestEdgeViewValues() {
	require := require.New(s.T())
	g := core.NewDiGraph()
	_, _ = g.AddEdge("A", "B", core.WithEdgeAttr("weight", 3.0))
	_, _ = g.AddEdge("B", "C")

	got := map[string]any{}
	for e, v := range g.Edges().Values("weight", 1.0) {
		got[e.U+e.V] = v
	}
	require.Equal(map[string]any{"AB": 3.0, "BC": 1.0}, got)
}

func (s *ViewsSuite) TestAtlasView() {
	require := require.New(s.T())
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", core.WithEdgeAttr("weight", 2.0))
	_, _ = g.AddEdge("A", "C")

	adj, err := g.Adj("A")
	require.NoError(err)
	require.Equal(2, adj.Len())

	var nbrs []string
	for v := range adj.Neighbors() {
		nbrs = append(nbrs, v)
	}
	require.Equal([]string{"B", "C"}, nbrs)

	attrs, err := adj.Lookup("B")
	require.NoError(err)
	require.Equal(2.0, attrs.FloatOr("weight", 0))
	_, err = adj.Lookup("Z")
	require.ErrorIs(err, core.ErrEdgeNotFound)

	_, err = g.Adj("missing")
	require.ErrorIs(err, core.ErrNodeNotFound)
}

func (s *ViewsSuite) TestAtlasViewMultiEdges() {
	require := require.New(s.T())
	mg := core.NewMultiGraph()
	_, _ = mg.AddEdge("A", "B", core.WithEdgeAttr("tag", "old"))
	_, _ = mg.AddEdge("A", "B", core.WithEdgeAttr("tag", "new"))

	adj, err := mg.Adj("A")
	require.NoError(err)

	// All represents the pair by its oldest record.
	for _, attrs := range adj.All() {
		require.Equal("old", attrs.GetOr("tag", nil))
	}
	// Edges yields every keyed record.
	var tags []any
	for _, attrs := range adj.Edges() {
		tags = append(tags, attrs.GetOr("tag", nil))
	}
	require.Equal([]any{"old", "new"}, tags)

	newest, err := adj.LookupKey("B", 1)
	require.NoError(err)
	require.Equal("new", newest.GetOr("tag", nil))
}

func (s *ViewsSuite) TestDegreeUndirected() {
	require := require.New(s.T())
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("A", "C")
	_, _ = g.AddEdge("A", "A") // self-loop counts twice

	d, err := g.Degree().Of("A")
	require.NoError(err)
	require.Equal(4.0, d)

	// Handshake: degrees sum to twice the edge-record count.
	var sum float64
	for _, deg := range g.Degree().All() {
		sum += deg
	}
	require.Equal(float64(2*g.EdgeCount()), sum)

	_, err = g.Degree().Of("missing")
	require.ErrorIs(err, core.ErrNodeNotFound)
}

func (s *ViewsSuite) TestDegreeDirected() {
	require := require.New(s.T())
	dg := core.NewDiGraph()
	_, _ = dg.AddEdge("A", "B")
	_, _ = dg.AddEdge("C", "A")
	_, _ = dg.AddEdge("A", "A")

	out, err := dg.OutDegree().Of("A")
	require.NoError(err)
	require.Equal(2.0, out)
	in, err := dg.InDegree().Of("A")
	require.NoError(err)
	require.Equal(2.0, in)
	total, err := dg.Degree().Of("A")
	require.NoError(err)
	require.Equal(4.0, total)
}

func (s *ViewsSuite) TestDegreeWeighted() {
	require := require.New(s.T())
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", core.WithEdgeAttr("weight", 2.5))
	_, _ = g.AddEdge("A", "C") // missing weight counts as 1

	d, err := g.Degree(core.WithWeight("weight")).Of("A")
	require.NoError(err)
	require.Equal(3.5, d)
}

func (s *ViewsSuite) TestDegreeCountsParallelEdges() {
	require := require.New(s.T())
	mg := core.NewMultiGraph()
	_, _ = mg.AddEdge("A", "B")
	_, _ = mg.AddEdge("A", "B")

	d, err := mg.Degree().Of("A")
	require.NoError(err)
	require.Equal(2.0, d)
}

func TestViewsSuite(t *testing.T) {
	suite.Run(t, new(ViewsSuite))
}
