package orient_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/core"
	"github.com/katalvlaran/planarity/dfsprep"
	"github.com/katalvlaran/planarity/orient"
)

// TestOrientVerticesInBicomp_PropagatesInversionDownTreeChildren wires a
// minimal two-vertex bicomp by hand — root r holding one TREE-CHILD arc to
// vertex 1, vertex 1 itself holding two arcs — with the tree arc marked
// Inverted, and checks that the traversal both clears the flag and flips
// vertex 1's own rotation exactly once.
func TestOrientVerticesInBicomp_PropagatesInversionDownTreeChildren(t *testing.T) {
	g, err := core.InitGraphCapacity(4, 8)
	require.NoError(t, err)

	r := 5 // an arbitrary virtual-vertex slot
	treeArc, reciprocal, extra := 0, 1, 2

	g.A(treeArc).Neighbor = 1
	g.A(treeArc).Type = core.EdgeTypeTreeChild
	g.A(treeArc).Inverted = true
	g.A(treeArc).Prev, g.A(treeArc).Next = core.NIL, core.NIL
	g.V(r).FirstArc, g.V(r).LastArc = treeArc, treeArc

	g.A(reciprocal).Neighbor = r
	g.A(reciprocal).Type = core.EdgeTypeTreeParent
	g.A(extra).Neighbor = 2
	g.A(extra).Type = core.EdgeTypeUnknown

	g.A(reciprocal).Prev, g.A(reciprocal).Next = core.NIL, extra
	g.A(extra).Prev, g.A(extra).Next = reciprocal, core.NIL
	g.V(1).FirstArc, g.V(1).LastArc = reciprocal, extra
	g.V(1).ExtFace = [2]int{10, 20}

	orient.OrientVerticesInBicomp(g, r, false)

	require.False(t, g.A(treeArc).Inverted)
	require.Equal(t, extra, g.V(1).FirstArc)
	require.Equal(t, reciprocal, g.V(1).LastArc)
	require.Equal(t, core.NIL, g.A(reciprocal).Next)
	require.Equal(t, extra, g.A(reciprocal).Prev)
	require.Equal(t, reciprocal, g.A(extra).Next)
	require.Equal(t, core.NIL, g.A(extra).Prev)
	require.Equal(t, [2]int{20, 10}, g.V(1).ExtFace)
}

// TestJoinBicomps_AttachesUnmergedRootsToParent runs preprocessing on a
// star (vertex 0 joined to 1, 2 and 3), whose three tree edges stay separate
// singleton bicomps, and confirms that JoinBicomps leaves no virtual vertex
// with a non-empty adjacency list and gives vertex 0 all three neighbors.
func TestJoinBicomps_AttachesUnmergedRootsToParent(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(0, 3))
	require.NoError(t, dfsprep.Initialize(g))

	orient.JoinBicomps(g)

	for c := 0; c < g.N; c++ {
		r := c + g.N
		require.Equal(t, core.NIL, g.V(r).FirstArc, "virtual vertex %d still holds arcs after JoinBicomps", r)
	}

	var neighbors []int
	for j := g.V(0).FirstArc; g.IsArc(j); j = g.A(j).Next {
		neighbors = append(neighbors, g.A(j).Neighbor)
	}
	require.ElementsMatch(t, []int{1, 2, 3}, neighbors)
}
