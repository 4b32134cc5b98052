package walk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/core"
	"github.com/katalvlaran/planarity/walk"
)

// TestMergeVertex_SplicesAdjacencyAndErasesRoot builds a tiny arena by hand:
// w has one real neighbor, its root copy r (=w+N) has two, and MergeVertex
// should fold r's list into w's at the requested side while erasing r.
func TestMergeVertex_SplicesAdjacencyAndErasesRoot(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))

	r := 0 + g.N // virtual root copy of vertex 0

	// manually wire r -- 2, since AddEdge only accepts real vertex slots.
	require.NoError(t, g.AddEdge(0, 2))
	rj := g.V(0).LastArc // the half just appended to vertex 0's list
	rTwin := core.Twin(rj)
	g.A(rTwin).Neighbor = r
	// move rj off vertex 0's list onto r's list.
	prev, next := g.A(rj).Prev, g.A(rj).Next
	if g.V(0).FirstArc == rj {
		g.V(0).FirstArc = next
	}
	if g.V(0).LastArc == rj {
		g.V(0).LastArc = prev
	}
	if g.IsArc(prev) {
		g.A(prev).Next = next
	}
	if g.IsArc(next) {
		g.A(next).Prev = prev
	}
	g.A(rj).Prev, g.A(rj).Next = core.NIL, core.NIL
	g.V(r).FirstArc, g.V(r).LastArc = rj, rj

	walk.MergeVertex(g, 0, 0, r)

	var neighbors []int
	for j := g.V(0).FirstArc; g.IsArc(j); j = g.A(j).Next {
		neighbors = append(neighbors, g.A(j).Neighbor)
	}
	require.ElementsMatch(t, []int{1, 2}, neighbors)

	require.Equal(t, core.NIL, g.V(r).FirstArc)
	require.Equal(t, core.NIL, g.V(r).Parent)
}

func TestDefaultMergeBicomps_EmptyStackIsNoop(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	ok, err := walk.DefaultMergeBicomps(g, 2, 0, 1, 0)
	require.NoError(t, err)
	require.True(t, ok)
}
