package orient

import (
	"github.com/katalvlaran/planarity/core"
	"github.com/katalvlaran/planarity/walk"
)

// OrientVerticesInEmbedding visits every virtual-vertex slot [N, 2N) still
// rooting a bicomp (non-empty adjacency) and orients it via
// OrientVerticesInBicomp with preserveSigns=false, the pass gp_Embed runs
// once its main reverse-DFI loop finishes successfully.
func OrientVerticesInEmbedding(g *core.Graph) {
	for c := 0; c < g.N; c++ {
		r := c + g.N
		if g.IsArc(g.V(r).FirstArc) {
			OrientVerticesInBicomp(g, r, false)
		}
	}
}

// OrientVerticesInBicomp walks the DFS tree inside the bicomp rooted at
// root, following TREE-CHILD arcs with an explicit stack (g.Stack, cleared
// on entry), carrying a cumulative invert bit down each path: the XOR of
// every TREE-CHILD arc's Inverted flag seen so far. Whenever the bit is set
// on arrival at a vertex, InvertVertex flips that vertex's own rotation so
// the accumulated inversions cancel out and every reachable vertex ends up
// consistently oriented relative to root. Each traversed tree-child arc's
// Inverted flag is cleared unless preserveSigns is set (only ever true when
// an extension deliberately wants a second traversal, e.g. from a
// then-and-later comparison, to see the same signs again).
func OrientVerticesInBicomp(g *core.Graph, root int, preserveSigns bool) {
	g.Stack.Clear()
	g.Stack.Push2(root, 0)

	for g.Stack.NonEmpty() {
		v, invert := g.Stack.Pop2()

		if invert != 0 {
			walk.InvertVertex(g, v)
		}

		for j := g.V(v).FirstArc; g.IsArc(j); j = g.A(j).Next {
			if g.A(j).Type != core.EdgeTypeTreeChild {
				continue
			}

			childInvert := invert
			if g.A(j).Inverted {
				childInvert ^= 1
			}
			if !preserveSigns {
				g.A(j).Inverted = false
			}

			g.Stack.Push2(g.A(j).Neighbor, childInvert)
		}
	}
}

// JoinBicomps splices every bicomp root left unmerged at the end of the
// embed driver's main loop — a DFS child whose whole subtree never received
// a back edge reaching past its own bicomp — into its DFS parent's real
// adjacency list, using MergeVertex with WPrevLink=0 and no flip. This is
// what collapses what would otherwise remain several disjoint biconnected
// pieces of the DFS tree into the one combined rotation system covering the
// whole (connected component of the) graph.
func JoinBicomps(g *core.Graph) {
	for c := 0; c < g.N; c++ {
		r := c + g.N
		if !g.IsArc(g.V(r).FirstArc) {
			continue
		}
		parent := g.V(c).Parent
		if parent == core.NIL {
			continue
		}
		walk.MergeVertex(g, parent, 0, r)
	}
}
