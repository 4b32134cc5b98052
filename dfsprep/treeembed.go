package dfsprep

import "github.com/katalvlaran/planarity/core"

// createDFSTreeEmbedding turns each DFS-tree edge into the starting
// singleton bicomp Walkdown expects: the parent's tree arc (already recorded
// on the child's virtual root copy r=i+N during Initialize's DFS pass)
// becomes r's sole adjacency-list entry, its twin (which used to point at
// the parent) is redirected to point at r instead and becomes real vertex
// i's sole adjacency-list entry, and the two are linked to each other on
// both sides of the external face.
//
// A DFS-tree root's real adjacency list is simply cleared: it has no parent
// arc to seed a bicomp with, and gains one later only if it is merged under
// a different root by orient.JoinBicomps or Walkdown's own bicomp merging.
//
// Grounded on graphEmbed.c _EmbeddingInitialize's final loop (labeled "(7)
// Create the DFS tree embedding"), which is the same transformation the
// standalone _CreateDFSTreeEmbedding performs, just reusing the root-copy
// arc Initialize already recorded instead of re-scanning i's original
// adjacency list for the EDGE_TYPE_PARENT arc.
func createDFSTreeEmbedding(g *core.Graph) {
	for i := 0; i < g.N; i++ {
		r := i + g.N

		if g.V(i).Parent == core.NIL {
			g.V(i).FirstArc = core.NIL
			g.V(i).LastArc = core.NIL
			continue
		}

		j := g.V(r).FirstArc
		g.A(j).Prev, g.A(j).Next = core.NIL, core.NIL

		jTwin := core.Twin(j)
		g.A(jTwin).Neighbor = r

		g.V(i).FirstArc, g.V(i).LastArc = jTwin, jTwin
		g.A(jTwin).Prev, g.A(jTwin).Next = core.NIL, core.NIL

		g.V(r).ExtFace = [2]int{i, i}
		g.V(i).ExtFace = [2]int{r, r}
	}
}
