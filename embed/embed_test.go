package embed_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/embed"
	"github.com/katalvlaran/planarity/hooks"
	"github.com/katalvlaran/planarity/testgraphs"
)

// TestEmbed_K4IsPlanar checks that K4 embeds as planar.
func TestEmbed_K4IsPlanar(t *testing.T) {
	g, err := testgraphs.Complete(4)
	require.NoError(t, err)

	out := embed.Embed(g, hooks.NewPlanar())
	require.NoError(t, out.Err)
	require.Equal(t, embed.OK, out.Result)
	require.Equal(t, 6, g.M)
}

// TestEmbed_K5IsNonembeddable checks that K5 is rejected as planar.
func TestEmbed_K5IsNonembeddable(t *testing.T) {
	g, err := testgraphs.Complete(5)
	require.NoError(t, err)

	out := embed.Embed(g, hooks.NewPlanar())
	require.NoError(t, out.Err)
	require.Equal(t, embed.Nonembeddable, out.Result)
}

// TestEmbed_K33IsNonembeddable checks that K3,3 is rejected as planar.
func TestEmbed_K33IsNonembeddable(t *testing.T) {
	g, err := testgraphs.Bipartite(3, 3)
	require.NoError(t, err)

	out := embed.Embed(g, hooks.NewPlanar())
	require.NoError(t, out.Err)
	require.Equal(t, embed.Nonembeddable, out.Result)
}

// TestEmbed_Path4IsPlanarAndOuterplanar checks that a path embeds under
// both PLANAR and OUTERPLANAR.
func TestEmbed_Path4IsPlanarAndOuterplanar(t *testing.T) {
	g, err := testgraphs.Path(4)
	require.NoError(t, err)
	out := embed.Embed(g, hooks.NewPlanar())
	require.NoError(t, out.Err)
	require.Equal(t, embed.OK, out.Result)

	g2, err := testgraphs.Path(4)
	require.NoError(t, err)
	out2 := embed.Embed(g2, hooks.NewOuterplanar())
	require.NoError(t, out2.Err)
	require.Equal(t, embed.OK, out2.Result)
}

// TestEmbed_Wheel5PlanarOuterplanar checks that a 5-rim wheel is planar but
// not outerplanar.
func TestEmbed_Wheel5PlanarOuterplanar(t *testing.T) {
	g, err := testgraphs.Wheel(5)
	require.NoError(t, err)
	out := embed.Embed(g, hooks.NewPlanar())
	require.NoError(t, out.Err)
	require.Equal(t, embed.OK, out.Result)

	g2, err := testgraphs.Wheel(5)
	require.NoError(t, err)
	out2 := embed.Embed(g2, hooks.NewOuterplanar())
	require.NoError(t, out2.Err)
	require.Equal(t, embed.Nonembeddable, out2.Result)
}

// TestEmbed_TwoDisjointTrianglesStayPlanar checks that two disjoint
// triangles embed as planar with no edge added, M staying 6.
func TestEmbed_TwoDisjointTrianglesStayPlanar(t *testing.T) {
	g, err := testgraphs.TwoTriangles()
	require.NoError(t, err)

	out := embed.Embed(g, hooks.NewPlanar())
	require.NoError(t, out.Err)
	require.Equal(t, embed.OK, out.Result)
	require.Equal(t, 6, g.M)
}

// TestEmbed_WithIntegrityCheck exercises the round-trip integrity pass on a
// simple embeddable graph.
func TestEmbed_WithIntegrityCheck(t *testing.T) {
	g, err := testgraphs.Cycle(5)
	require.NoError(t, err)

	out := embed.Embed(g, hooks.NewPlanar(), embed.WithIntegrityCheck())
	require.NoError(t, out.Err)
	require.Equal(t, embed.OK, out.Result)
}
