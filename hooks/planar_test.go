package hooks_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/core"
	"github.com/katalvlaran/planarity/hooks"
	"github.com/katalvlaran/planarity/obstruction"
)

func TestPlanar_HandleBlockedEmbedIteration_AlwaysFails(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	p := hooks.NewPlanar()
	ok, err := p.HandleBlockedEmbedIteration(g, 1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPlanar_EmbedPostprocess_SuccessOrientsAndJoins(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))

	p := hooks.NewPlanar()
	res, err := p.EmbedPostprocess(g, true)
	require.NoError(t, err)
	require.Equal(t, obstruction.MinorNone, res.Minor)
}

func TestPlanar_EmbedPostprocess_FailureIsolates(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	g.Stack.Push2(9, 0)

	p := hooks.NewPlanar()
	res, err := p.EmbedPostprocess(g, false)
	require.NoError(t, err)
	require.Equal(t, obstruction.MinorA, res.Minor)
	require.Equal(t, 9, res.BlockedRoot)
}
