package walk

import "github.com/katalvlaran/planarity/core"

// WalkUp establishes pertinence for step i. j is a forward arc from i to a
// descendant w; WalkUp marks w pertinent and races two external-face
// walkers (Zig and Zag) outward from w until they reach i, recording every
// cut vertex and bicomp root crossed along the way onto the crossed
// vertices' PertinentBicompList so Walkdown can find them later. Internally
// active bicomp roots are prepended, externally active ones appended, so
// Walkdown processes every internally active bicomp of a vertex before any
// externally active one.
//
// Already-visited vertices (VisitedInfo == i) short-circuit the walk: a
// prior WalkUp call in the same step already recorded everything above that
// point, which is what keeps the total work across all of step i's WalkUp
// calls linear in the length of external face ultimately consumed.
func WalkUp(g *core.Graph, i, j int) {
	n := g.N
	w := g.A(j).Neighbor
	g.V(w).PertinentAdjacencyInfo = j

	zig, zag := w, w
	zigPrevLink, zagPrevLink := 1, 0

	for zig != i {
		var r int
		var nextZig, nextZag int

		if nz := g.V(zig).ExtFace[1^zigPrevLink]; nz >= n {
			if g.V(zig).VisitedInfo == i {
				break
			}
			r = nz
			nextZag = opposingExtFaceVertex(g, r, zig)
			if g.V(nextZag).VisitedInfo == i {
				break
			}
			nextZig = -1
		} else if nz2 := g.V(zag).ExtFace[1^zagPrevLink]; nz2 >= n {
			if g.V(zag).VisitedInfo == i {
				break
			}
			r = nz2
			nextZig = opposingExtFaceVertex(g, r, zag)
			if g.V(nextZig).VisitedInfo == i {
				break
			}
			nextZag = -1
		} else {
			if g.V(zig).VisitedInfo == i {
				break
			}
			if g.V(zag).VisitedInfo == i {
				break
			}
			r = core.NIL
			nextZig, nextZag = nz, nz2
		}

		g.V(zig).VisitedInfo = i
		g.V(zag).VisitedInfo = i

		if r == core.NIL {
			if g.V(nextZig).ExtFace[0] == zig {
				zigPrevLink = 0
			} else {
				zigPrevLink = 1
			}
			zig = nextZig

			if g.V(nextZag).ExtFace[0] == zag {
				zagPrevLink = 0
			} else {
				zagPrevLink = 1
			}
			zag = nextZag
		} else {
			rootIDChild := r - n
			parentCopy := g.V(rootIDChild).Parent
			pc := g.V(parentCopy)

			if g.V(rootIDChild).Lowpoint < i {
				pc.PertinentBicompList = g.Bicomps.Append(pc.PertinentBicompList, rootIDChild)
			} else {
				pc.PertinentBicompList = g.Bicomps.Prepend(pc.PertinentBicompList, rootIDChild)
			}

			zig, zag = parentCopy, parentCopy
			zigPrevLink, zagPrevLink = 1, 0
		}
	}
}

// opposingExtFaceVertex returns the external-face neighbor of r on the side
// opposite the one arrived from via "from".
func opposingExtFaceVertex(g *core.Graph, r, from int) int {
	if g.V(r).ExtFace[0] == from {
		return g.V(r).ExtFace[1]
	}
	return g.V(r).ExtFace[0]
}
