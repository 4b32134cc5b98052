package hooks_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/core"
	"github.com/katalvlaran/planarity/hooks"
	"github.com/katalvlaran/planarity/obstruction"
)

func TestOuterplanar_PrepareGraph_AddsUniversalVertex(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))

	o := hooks.NewOuterplanar()
	cone, err := o.PrepareGraph(g)
	require.NoError(t, err)

	require.Equal(t, 4, cone.N)
	require.Equal(t, 5, cone.M)

	for v := 0; v < 3; v++ {
		var neighbors []int
		for j := cone.V(v).FirstArc; cone.IsArc(j); j = cone.A(j).Next {
			neighbors = append(neighbors, cone.A(j).Neighbor)
		}
		require.Contains(t, neighbors, 3, "vertex %d not joined to the cone vertex", v)
	}

	var hubNeighbors []int
	for j := cone.V(3).FirstArc; cone.IsArc(j); j = cone.A(j).Next {
		hubNeighbors = append(hubNeighbors, cone.A(j).Neighbor)
	}
	require.ElementsMatch(t, []int{0, 1, 2}, hubNeighbors)
}

func TestPlanar_PrepareGraph_ReturnsSameGraph(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	p := hooks.NewPlanar()
	out, err := p.PrepareGraph(g)
	require.NoError(t, err)
	require.Same(t, g, out)
}

func TestOuterplanar_EmbedPostprocess_TagsMinorC(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	g.Stack.Push2(4, 0)

	o := hooks.NewOuterplanar()
	res, err := o.EmbedPostprocess(g, false)
	require.NoError(t, err)
	require.Equal(t, obstruction.MinorC, res.Minor)
}

func TestDrawPlanar_MergeBicomps_RecordsSpan(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	d := hooks.NewDrawPlanar()
	require.Empty(t, d.Spans)
	// An empty g.Stack makes DefaultMergeBicomps's loop a no-op returning
	// ok=true immediately, so this exercises the recording branch without
	// needing a full merge fixture.
	ok, err := d.MergeBicomps(g, 2, 7, 3, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, d.Spans, 1)
	require.Equal(t, hooks.VisibilitySpan{Step: 2, RootVertex: 7, Vertex: 3}, d.Spans[0])
}

func TestSearchModes_TagMinorTypes(t *testing.T) {
	g1, err := core.NewGraph(3)
	require.NoError(t, err)
	g1.Stack.Push2(4, 0)
	res, err := hooks.NewSearchK23().EmbedPostprocess(g1, false)
	require.NoError(t, err)
	require.Equal(t, obstruction.MinorD, res.Minor)

	g2, err := core.NewGraph(3)
	require.NoError(t, err)
	g2.Stack.Push2(4, 0)
	res, err = hooks.NewSearchK33().EmbedPostprocess(g2, false)
	require.NoError(t, err)
	require.Equal(t, obstruction.MinorE, res.Minor)
}
