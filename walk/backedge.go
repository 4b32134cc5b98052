package walk

import "github.com/katalvlaran/planarity/core"

// DefaultEmbedBackEdgeToDescendant embeds the back edge Walkup recorded in
// w's PertinentAdjacencyInfo between rootVertex and w: the forward-arc half
// moves from the root's parent copy's FwdArcList into rootVertex's
// adjacency list, the back-arc half is spliced into w's, and both endpoints
// are linked onto the external face.
//
// Both arcs are orphaned records at this point, not currently part of any
// live adjacency list: dfsprep.Initialize's DFS-tree embedding pass already reset every
// real vertex's list down to just its DFS-tree-parent arc, discarding
// whatever stale Prev/Next the back-edge's arc record carried from before
// that reset, so the splice below always writes both of the arc's own link
// fields fresh rather than reading them. See graphEmbed.c
// _EmbedBackEdgeToDescendant, whose adjacency-list edits this mirrors
// exactly (both W's and RootVertex's lists are guaranteed non-empty by that
// point, per its comment).
func DefaultEmbedBackEdgeToDescendant(g *core.Graph, rootSide, rootVertex, w, wPrevLink int) error {
	fwdArc := g.V(w).PertinentAdjacencyInfo
	backArc := core.Twin(fwdArc)
	parentCopy := g.V(rootVertex - g.N).Parent

	pc := g.V(parentCopy)
	if pc.FwdArcList == fwdArc {
		pc.FwdArcList = g.A(fwdArc).Next
		if pc.FwdArcList == fwdArc {
			pc.FwdArcList = core.NIL
		}
	}
	prev, next := g.A(fwdArc).Prev, g.A(fwdArc).Next
	g.A(prev).Next = next
	g.A(next).Prev = prev

	spliceIntoAdjacency(g, fwdArc, rootVertex, rootSide)
	spliceIntoAdjacency(g, backArc, w, wPrevLink)

	g.A(backArc).Neighbor = rootVertex

	g.V(rootVertex).ExtFace[rootSide] = w
	g.V(w).ExtFace[wPrevLink] = rootVertex
	return nil
}

// spliceIntoAdjacency inserts the orphaned arc j as the new link-side end of
// v's adjacency list, which is guaranteed non-empty (it holds at least v's
// DFS-tree arc already).
func spliceIntoAdjacency(g *core.Graph, j, v, link int) {
	old := vertexArc(g, v, link)
	setArcLink(g, j, 1^link, core.NIL)
	setArcLink(g, j, link, old)
	setArcLink(g, old, 1^link, j)
	setVertexArc(g, v, link, j)
}
