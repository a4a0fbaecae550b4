package flow_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/flownet/flow"
)

// GraphSuite groups tests for residual-graph construction and lookup.
type GraphSuite struct {
	suite.Suite
	g *flow.Graph[string]
}

func (s *GraphSuite) SetupTest() {
	s.g = flow.NewGraph[string]()
}

// TestAddEdgePair: one AddEdge yields a forward edge and its cap-0 reverse.
func (s *GraphSuite) TestAddEdgePair() {
	id, err := s.g.AddEdge("a", "b", 7)
	require.NoError(s.T(), err)

	fwd, err := s.g.Edge(id)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "a", fwd.From)
	require.Equal(s.T(), "b", fwd.To)
	require.Equal(s.T(), int64(7), fwd.Capacity)
	require.Equal(s.T(), int64(0), fwd.Flow)

	rev, err := s.g.Residual(id)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "b", rev.From)
	require.Equal(s.T(), "a", rev.To)
	require.Equal(s.T(), int64(0), rev.Capacity)
	require.Equal(s.T(), id, rev.ID.Residual(), "pair must be mutually linked")

	require.Equal(s.T(), 2, s.g.Order())
	require.Equal(s.T(), 1, s.g.Size())
}

// TestSelfLoopRejected: source == sink fails atomically, graph unchanged.
func (s *GraphSuite) TestSelfLoopRejected() {
	_, err := s.g.AddEdge("x", "x", 1)
	require.True(s.T(), errors.Is(err, flow.ErrSelfLoop))
	require.Equal(s.T(), 0, s.g.Size(), "rejected edge must not be committed")
	require.Equal(s.T(), 0, s.g.Order())
	require.Empty(s.T(), s.g.EdgesFrom("x"))
}

// TestNegativeCapacityRejected: capacity below zero fails atomically.
func (s *GraphSuite) TestNegativeCapacityRejected() {
	_, err := s.g.AddEdge("a", "b", -3)
	require.True(s.T(), errors.Is(err, flow.ErrNegativeCapacity))
	require.Equal(s.T(), 0, s.g.Size())
}

// TestZeroCapacityAllowed: capacity 0 is a legal, if useless, edge.
func (s *GraphSuite) TestZeroCapacityAllowed() {
	id, err := s.g.AddEdge("a", "b", 0)
	require.NoError(s.T(), err)
	r, err := s.g.ResidualCapacity(id)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(0), r)
}

// TestNoValueDedup: identical AddEdge calls create independent edge pairs.
func (s *GraphSuite) TestNoValueDedup() {
	id1, err := s.g.AddEdge("a", "b", 1)
	require.NoError(s.T(), err)
	id2, err := s.g.AddEdge("a", "b", 1)
	require.NoError(s.T(), err)

	require.NotEqual(s.T(), id1, id2)
	require.Equal(s.T(), 2, s.g.Size())

	out := s.g.EdgesFrom("a")
	require.Len(s.T(), out, 2, "both parallel edges registered under a")
	require.Equal(s.T(), id1, out[0].ID)
	require.Equal(s.T(), id2, out[1].ID)
}

// TestEdgesFromUnknownNode: never an error, just empty.
func (s *GraphSuite) TestEdgesFromUnknownNode() {
	require.Empty(s.T(), s.g.EdgesFrom("ghost"))
}

// TestEdgesFromMixesForwardAndReverse: reverse residuals are keyed by their
// own source node.
func (s *GraphSuite) TestEdgesFromMixesForwardAndReverse() {
	_, err := s.g.AddEdge("a", "b", 2)
	require.NoError(s.T(), err)
	_, err = s.g.AddEdge("b", "c", 2)
	require.NoError(s.T(), err)

	atB := s.g.EdgesFrom("b")
	require.Len(s.T(), atB, 2)
	require.Equal(s.T(), "a", atB[0].To, "reverse residual of a→b")
	require.Equal(s.T(), int64(0), atB[0].Capacity)
	require.Equal(s.T(), "c", atB[1].To, "forward edge b→c")
	require.Equal(s.T(), int64(2), atB[1].Capacity)
}

// TestUnknownEdgeID: lookups with foreign IDs surface ErrEdgeNotFound.
func (s *GraphSuite) TestUnknownEdgeID() {
	_, err := s.g.Edge(flow.EdgeID(0))
	require.True(s.T(), errors.Is(err, flow.ErrEdgeNotFound))

	_, err = s.g.ResidualCapacity(flow.EdgeID(-1))
	require.True(s.T(), errors.Is(err, flow.ErrEdgeNotFound))

	id, err := s.g.AddEdge("a", "b", 1)
	require.NoError(s.T(), err)
	_, err = s.g.Edge(id + 2)
	require.True(s.T(), errors.Is(err, flow.ErrEdgeNotFound))
}

// TestReset: flows return to zero, topology stays.
func (s *GraphSuite) TestReset() {
	id, err := s.g.AddEdge("s", "t", 4)
	require.NoError(s.T(), err)

	total, err := flow.MaxFlow(s.g, "s", "t")
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(4), total)

	s.g.Reset()
	e, err := s.g.Edge(id)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(0), e.Flow)
	require.Equal(s.T(), int64(4), e.Capacity)

	total, err = flow.MaxFlow(s.g, "s", "t")
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(4), total, "fresh solve after Reset")
}

// TestGenericNodeType: any comparable type can key the network.
func (s *GraphSuite) TestGenericNodeType() {
	type cell struct{ row, col int }

	g := flow.NewGraph[cell]()
	_, err := g.AddEdge(cell{0, 0}, cell{0, 1}, 1)
	require.NoError(s.T(), err)
	_, err = g.AddEdge(cell{0, 1}, cell{1, 1}, 1)
	require.NoError(s.T(), err)

	total, err := flow.MaxFlow(g, cell{0, 0}, cell{1, 1})
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(1), total)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
