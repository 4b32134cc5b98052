package walk

import "github.com/katalvlaran/planarity/core"

// NextOnExternalFace walks one step along the true external face (not the
// extFace short-circuit) starting from curVertex, having entered it via the
// link prevLink. It returns the next vertex and the link to use to continue
// the walk, i.e. the link in the next vertex that leads back to curVertex.
//
// Nothing in this module calls it: Walkdown/Walkup traversal uses the
// extFace links directly.
func NextOnExternalFace(g *core.Graph, curVertex int, prevLink int) (nextVertex, nextPrevLink int) {
	arc := vertexArc(g, curVertex, 1^prevLink)
	nextVertex = g.A(arc).Neighbor

	if g.V(nextVertex).FirstArc != g.V(nextVertex).LastArc {
		twin := core.Twin(arc)
		if twin == g.V(nextVertex).FirstArc {
			nextPrevLink = 0
		} else {
			nextPrevLink = 1
		}
	} else {
		nextPrevLink = prevLink
	}
	return nextVertex, nextPrevLink
}

// vertexArc returns v's FirstArc (link 0) or LastArc (link 1).
func vertexArc(g *core.Graph, v, link int) int {
	return g.VertexArc(v, link)
}

// setVertexArc sets v's FirstArc (link 0) or LastArc (link 1).
func setVertexArc(g *core.Graph, v, link, j int) {
	g.SetVertexArc(v, link, j)
}
