package dfsprep_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/core"
	"github.com/katalvlaran/planarity/dfsprep"
)

// TestCreateSortedSeparatedDFSChildLists_OrdersChildrenByLowpoint builds a
// graph with several back edges reaching different ancestor depths and
// checks that every DFS root's SeparatedDFSChildList lists its children
// ascending by Lowpoint rather than by DFI, regardless of which exact
// spanning tree the DFS happens to find.
func TestCreateSortedSeparatedDFSChildLists_OrdersChildrenByLowpoint(t *testing.T) {
	g, err := core.NewGraph(7)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(0, 3))
	require.NoError(t, g.AddEdge(1, 4))
	require.NoError(t, g.AddEdge(4, 0)) // back edge: child 1's subtree reaches root 0.
	require.NoError(t, g.AddEdge(2, 5))
	require.NoError(t, g.AddEdge(5, 1)) // back edge: child 2's subtree reaches DFI of child 1's branch.
	require.NoError(t, g.AddEdge(3, 6)) // no back edge: child 3's subtree lowpoint stays its own DFI.

	require.NoError(t, dfsprep.Initialize(g))
	dfsprep.CreateSortedSeparatedDFSChildLists(g)

	root := -1
	for i := 0; i < g.N; i++ {
		if g.V(i).Parent == core.NIL {
			root = i
		}
	}
	require.NotEqual(t, -1, root)

	head := g.V(root).SeparatedDFSChildList
	var order []int
	for c := head; c != core.NIL; c = g.SeparatedDFS.Next(head, c) {
		order = append(order, c)
	}
	require.NotEmpty(t, order)

	for i := 1; i < len(order); i++ {
		require.LessOrEqual(t, g.V(order[i-1]).Lowpoint, g.V(order[i]).Lowpoint)
	}
}

// TestCreateSortedSeparatedDFSChildLists_NeverListsARoot checks that no DFS
// root ever appears as an element of another vertex's SeparatedDFSChildList
// (the DFSParent != NIL guard's purpose), even though a root can itself own
// a non-empty list of its own children.
func TestCreateSortedSeparatedDFSChildLists_NeverListsARoot(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))

	require.NoError(t, dfsprep.Initialize(g))
	dfsprep.CreateSortedSeparatedDFSChildLists(g)

	for i := 0; i < g.N; i++ {
		head := g.V(i).SeparatedDFSChildList
		for c := head; c != core.NIL; c = g.SeparatedDFS.Next(head, c) {
			require.NotEqual(t, core.NIL, g.V(c).Parent, "vertex %d is a root but was listed as vertex %d's child", c, i)
		}
	}
}
