package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/core"
)

func TestNewGraph_Sizes(t *testing.T) {
	g, err := core.NewGraph(5)
	require.NoError(t, err)
	require.Equal(t, 5, g.N)
	require.True(t, g.ArcCapacity >= 4)
}

func TestInitGraphCapacity_RejectsBadSize(t *testing.T) {
	_, err := core.InitGraphCapacity(0, 10)
	require.ErrorIs(t, err, core.ErrInvalidSize)

	_, err = core.InitGraphCapacity(5, 1)
	require.ErrorIs(t, err, core.ErrCapacity)
}

func TestAddEdge_TwinsAndAdjacency(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.Equal(t, 2, g.M)

	j := g.V(0).FirstArc
	require.True(t, g.IsArc(j))
	require.Equal(t, 1, g.A(j).Neighbor)

	twin := core.Twin(j)
	require.Equal(t, 0, g.A(twin).Neighbor)
	require.Equal(t, core.Twin(twin), j)
}

func TestAddEdge_RejectsOutOfRangeVertex(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	err = g.AddEdge(0, 3)
	require.ErrorIs(t, err, core.ErrVertexRange)
}

func TestEnsureEdgeCapacity_GrowsOnDemand(t *testing.T) {
	g, err := core.InitGraphCapacity(4, 3)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(3, 0))
	require.NoError(t, g.AddEdge(0, 2))
	require.Equal(t, 5, g.M)
	require.True(t, g.ArcCapacity >= 5)
}

func TestSortVertices_IsIdentityAfterAssigningIndex(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))

	// Simulate DFS discovery assigning DFIs in reverse input order.
	dfi := []int{3, 2, 1, 0}
	for slot, d := range dfi {
		g.V(slot).Index = d
	}
	g.V(1).Parent = 0

	require.NoError(t, g.SortVertices())
	require.True(t, g.SortedByDFI())

	for i := 0; i < g.N; i++ {
		require.Equal(t, i, g.V(i).Index)
	}
	// Vertex originally at slot 1 (DFI 2) had parent slot 0 (DFI 3).
	require.Equal(t, 3, g.V(2).Parent)
	require.Equal(t, 0, g.OriginalLabel(3))

	// Sorting again is a no-op.
	require.NoError(t, g.SortVertices())
}

func TestCopyAndDupGraph(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))

	dup := core.DupGraph(g)
	require.Equal(t, g.M, dup.M)
	require.Equal(t, g.V(0).FirstArc, dup.V(0).FirstArc)

	require.NoError(t, dup.AddEdge(0, 2))
	require.NotEqual(t, g.M, dup.M)
}

func TestReinitialize_ResetsState(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))

	g.Reinitialize()
	require.Equal(t, 0, g.M)
	require.Equal(t, core.NIL, g.V(0).FirstArc)
	require.Equal(t, g.N, g.V(0).LeastAncestor)
	require.False(t, g.SortedByDFI())
}
