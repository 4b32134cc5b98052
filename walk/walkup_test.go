package walk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/core"
	"github.com/katalvlaran/planarity/walk"
)

// TestWalkUp_MarksPertinenceAndStopsAtI links i=0 and w=1 directly to each
// other on both external-face sides and checks that WalkUp, given a forward
// arc from i to descendant w, marks w pertinent and terminates without
// error once the walkers reach i itself (the trivial case: w is already i's
// direct external-face neighbor on both sides).
func TestWalkUp_MarksPertinenceAndStopsAtI(t *testing.T) {
	g, err := core.InitGraphCapacity(3, 8)
	require.NoError(t, err)

	i := 0
	w := 1
	require.NoError(t, g.AddEdge(i, w))
	j := g.V(i).FirstArc

	g.V(i).ExtFace = [2]int{w, w}
	g.V(w).ExtFace = [2]int{i, i}

	require.NotPanics(t, func() {
		walk.WalkUp(g, i, j)
	})

	require.Equal(t, j, g.V(w).PertinentAdjacencyInfo)
}
