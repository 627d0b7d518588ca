package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/luk036/xnetgo/core"
	"github.com/luk036/xnetgo/flow"
)

// MaxFlowSuite groups tests for the interface-level flow functions.
type MaxFlowSuite struct {
	suite.Suite
}

// TestMaximumFlow: the flow value and the exact per-edge assignment of the
// layered network. The maximum flow here is unique, so the dictionary is
// fully determined.
func (s *MaxFlowSuite) TestMaximumFlow() {
	g := layeredNetwork()

	v, flowDict, err := flow.MaximumFlow(g, "x", "y")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3.0, v)
	want := map[string]map[string]float64{
		"x": {"a": 2, "b": 1},
		"a": {"c": 2},
		"b": {"c": 0, "d": 1},
		"c": {"y": 2},
		"d": {"e": 1},
		"e": {"y": 1},
		"y": {},
	}
	require.Equal(s.T(), want, flowDict)
}

// TestMaximumFlowValue matches MaximumFlow without building the dictionary.
func (s *MaxFlowSuite) TestMaximumFlowValue() {
	g := layeredNetwork()

	v, err := flow.MaximumFlowValue(g, "x", "y")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3.0, v)
}

// TestMinimumCut: value equals the max flow and the partition separates the
// terminals, source side first, both in node insertion order.
func (s *MaxFlowSuite) TestMinimumCut() {
	g := layeredNetwork()

	cutValue, partition, err := flow.MinimumCut(g, "x", "y")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3.0, cutValue)
	require.Equal(s.T(), []string{"x", "a", "c"}, partition[0])
	require.Equal(s.T(), []string{"b", "d", "e", "y"}, partition[1])

	// The cut value equals the capacity crossing the partition.
	var crossing float64
	onSource := map[string]bool{}
	for _, id := range partition[0] {
		onSource[id] = true
	}
	for e, attrs := range g.Edges().Data() {
		if onSource[e.U] && !onSource[e.V] {
			crossing += attrs.FloatOr(flow.CapacityAttr, 0)
		}
	}
	require.Equal(s.T(), cutValue, crossing)
}

// TestMinimumCutValue matches MinimumCut's value.
func (s *MaxFlowSuite) TestMinimumCutValue() {
	g := layeredNetwork()

	cutValue, err := flow.MinimumCutValue(g, "x", "y")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3.0, cutValue)
}

// TestMinimumCutUnbounded: an infinite-capacity s-t path leaves the cut
// undefined.
func (s *MaxFlowSuite) TestMinimumCutUnbounded() {
	g := core.NewDiGraph()
	_, _ = g.AddEdge("s", "t")

	_, _, err := flow.MinimumCut(g, "s", "t")
	require.ErrorIs(s.T(), err, flow.ErrUnbounded)
}

// TestCustomCapacityAttr reads capacities from a renamed attribute.
func (s *MaxFlowSuite) TestCustomCapacityAttr() {
	g := core.NewDiGraph()
	_, _ = g.AddEdge("A", "B", core.WithEdgeAttr("bandwidth", 8.0))

	v, err := flow.MaximumFlowValue(g, "A", "B", flow.WithCapacityAttr("bandwidth"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 8.0, v)
}

// TestWithFlowFunc routes the computation through a caller-supplied routine.
func (s *MaxFlowSuite) TestWithFlowFunc() {
	g := layeredNetwork()
	var called bool
	fn := func(g *core.Graph, src, dst string, opts ...flow.Option) (*core.Graph, error) {
		called = true

		return flow.EdmondsKarp(g, src, dst, opts...)
	}

	v, err := flow.MaximumFlowValue(g, "x", "y", flow.WithFlowFunc(fn))
	require.NoError(s.T(), err)
	require.True(s.T(), called)
	require.Equal(s.T(), 3.0, v)
}

// TestBuildFlowDictNilGraphs rejects nil arguments.
func (s *MaxFlowSuite) TestBuildFlowDictNilGraphs() {
	g := core.NewDiGraph()
	_, err := flow.BuildFlowDict(nil, g)
	require.ErrorIs(s.T(), err, flow.ErrGraphNil)
	_, err = flow.BuildFlowDict(g, nil)
	require.ErrorIs(s.T(), err, flow.ErrGraphNil)
}

func TestMaxFlowSuite(t *testing.T) {
	suite.Run(t, new(MaxFlowSuite))
}

// ResidualSuite groups tests for residual-network construction.
type ResidualSuite struct {
	suite.Suite
}

// TestDirectedArcPairs: each edge yields a forward arc at capacity and a
// zero-capacity reverse arc.
func (s *ResidualSuite) TestDirectedArcPairs() {
	g := core.NewDiGraph()
	_, _ = g.AddEdge("A", "B", withCap(4))

	r, err := flow.BuildResidualNetwork(g, flow.DefaultCapacityAttr)
	require.NoError(s.T(), err)
	require.True(s.T(), r.IsDirected())

	fwd, err := r.EdgeAttrs("A", "B")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4.0, fwd.FloatOr(flow.CapacityAttr, -1))
	require.Equal(s.T(), 0.0, fwd.FloatOr(flow.FlowAttr, -1), "flow starts at zero")

	rev, err := r.EdgeAttrs("B", "A")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, rev.FloatOr(flow.CapacityAttr, -1))
}

// TestAntiparallelEdges: both directions present in g keep their own
// capacities.
func (s *ResidualSuite) TestAntiparallelEdges() {
	g := core.NewDiGraph()
	_, _ = g.AddEdge("A", "B", withCap(4))
	_, _ = g.AddEdge("B", "A", withCap(9))

	r, err := flow.BuildResidualNetwork(g, flow.DefaultCapacityAttr)
	require.NoError(s.T(), err)
	fwd, _ := r.EdgeAttrs("A", "B")
	rev, _ := r.EdgeAttrs("B", "A")
	require.Equal(s.T(), 4.0, fwd.FloatOr(flow.CapacityAttr, -1))
	require.Equal(s.T(), 9.0, rev.FloatOr(flow.CapacityAttr, -1))
}

// TestUndirectedEqualPair: an undirected edge becomes two arcs of equal
// capacity.
func (s *ResidualSuite) TestUndirectedEqualPair() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", withCap(6))

	r, err := flow.BuildResidualNetwork(g, flow.DefaultCapacityAttr)
	require.NoError(s.T(), err)
	fwd, _ := r.EdgeAttrs("A", "B")
	rev, _ := r.EdgeAttrs("B", "A")
	require.Equal(s.T(), 6.0, fwd.FloatOr(flow.CapacityAttr, -1))
	require.Equal(s.T(), 6.0, rev.FloatOr(flow.CapacityAttr, -1))
}

// TestInfSurrogate: inf = 3 * (sum of finite capacities) + 1, and
// infinite-capacity arcs carry it.
func (s *ResidualSuite) TestInfSurrogate() {
	g := core.NewDiGraph()
	_, _ = g.AddEdge("A", "B", withCap(4))
	_, _ = g.AddEdge("B", "C", withCap(6))
	_, _ = g.AddEdge("A", "C") // infinite

	r, err := flow.BuildResidualNetwork(g, flow.DefaultCapacityAttr)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 31.0, flow.ResidualInf(r))
	infArc, _ := r.EdgeAttrs("A", "C")
	require.Equal(s.T(), 31.0, infArc.FloatOr(flow.CapacityAttr, -1))
}

// TestSkipsUselessEdges: self-loops and non-positive capacities do not
// reach the residual network.
func (s *ResidualSuite) TestSkipsUselessEdges() {
	g := core.NewDiGraph()
	_, _ = g.AddEdge("A", "A", withCap(5))
	_, _ = g.AddEdge("A", "B", withCap(0))
	_, _ = g.AddEdge("B", "C", withCap(-2))
	_, _ = g.AddEdge("C", "D", withCap(1))

	r, err := flow.BuildResidualNetwork(g, flow.DefaultCapacityAttr)
	require.NoError(s.T(), err)
	require.False(s.T(), r.HasEdge("A", "A"))
	require.False(s.T(), r.HasEdge("A", "B"))
	require.False(s.T(), r.HasEdge("B", "C"))
	require.True(s.T(), r.HasEdge("C", "D"))
	require.Equal(s.T(), 4, r.NodeCount(), "isolated nodes keep their slot")
}

// TestRejectsBadInput covers nil and multigraph rejection.
func (s *ResidualSuite) TestRejectsBadInput() {
	_, err := flow.BuildResidualNetwork(nil, flow.DefaultCapacityAttr)
	require.ErrorIs(s.T(), err, flow.ErrGraphNil)

	mg := core.NewMultiGraph()
	_, _ = mg.AddEdge("A", "B", withCap(1))
	_, err = flow.BuildResidualNetwork(mg, flow.DefaultCapacityAttr)
	require.ErrorIs(s.T(), err, flow.ErrMultigraph)
}

// TestDetectUnboundedness: the eager check finds an all-infinite s-t path
// before any flow is pushed.
func (s *ResidualSuite) TestDetectUnboundedness() {
	g := core.NewDiGraph()
	_, _ = g.AddEdge("s", "m") // infinite
	_, _ = g.AddEdge("m", "t") // infinite
	_, _ = g.AddEdge("s", "b", withCap(2))
	_, _ = g.AddEdge("b", "t", withCap(2))

	r, err := flow.BuildResidualNetwork(g, flow.DefaultCapacityAttr)
	require.NoError(s.T(), err)
	require.ErrorIs(s.T(), flow.DetectUnboundedness(r, "s", "t"), flow.ErrUnbounded)

	// Break the infinite chain: the finite route alone is bounded.
	g2 := core.NewDiGraph()
	_, _ = g2.AddEdge("s", "m") // infinite, dead ends
	_, _ = g2.AddEdge("m", "t", withCap(3))
	r2, err := flow.BuildResidualNetwork(g2, flow.DefaultCapacityAttr)
	require.NoError(s.T(), err)
	require.NoError(s.T(), flow.DetectUnboundedness(r2, "s", "t"))

	require.ErrorIs(s.T(), flow.DetectUnboundedness(nil, "s", "t"), flow.ErrGraphNil)
}

func TestResidualSuite(t *testing.T) {
	suite.Run(t, new(ResidualSuite))
}
