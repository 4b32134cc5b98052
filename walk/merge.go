package walk

import "github.com/katalvlaran/planarity/core"

// arcLink returns arc j's Next (link 0) or Prev (link 1) field — the two
// play the same head/tail-relative role for arcs that FirstArc/LastArc play
// for vertices, which is what lets MergeVertex splice lists generically by
// link index instead of by name.
func arcLink(g *core.Graph, j, link int) int {
	return g.ArcLink(j, link)
}

func setArcLink(g *core.Graph, j, link, val int) {
	g.SetArcLink(j, link, val)
}

// MergeVertex joins virtual vertex r (a root copy of w appearing in
// [N, 2N)) into w: every arc pointing into r is redirected to point at w,
// then r's adjacency list is spliced into w's at the point indicated by
// wPrevLink, and r is erased. See graphEmbed.c _MergeVertex.
func MergeVertex(g *core.Graph, w, wPrevLink, r int) {
	j := g.V(r).FirstArc
	for g.IsArc(j) {
		twin := core.Twin(j)
		g.A(twin).Neighbor = w
		j = g.A(j).Next
	}

	eW := vertexArc(g, w, wPrevLink)
	eR := vertexArc(g, r, 1^wPrevLink)
	eExt := vertexArc(g, r, wPrevLink)

	if g.IsArc(eW) {
		setArcLink(g, eW, 1^wPrevLink, eR)
		setArcLink(g, eR, wPrevLink, eW)
		setVertexArc(g, w, wPrevLink, eExt)
		setArcLink(g, eExt, 1^wPrevLink, core.NIL)
	} else {
		setVertexArc(g, w, 1^wPrevLink, eR)
		setArcLink(g, eR, wPrevLink, core.NIL)
		setVertexArc(g, w, wPrevLink, eExt)
		setArcLink(g, eExt, 1^wPrevLink, core.NIL)
	}

	*g.V(r) = core.VertexRec{
		Parent:                 core.NIL,
		LeastAncestor:          g.N,
		Lowpoint:               g.N,
		VisitedInfo:            g.N,
		PertinentAdjacencyInfo: core.NIL,
		SortedDFSChildList:     core.NIL,
		SeparatedDFSChildList:  core.NIL,
		PertinentBicompList:    core.NIL,
		FwdArcList:             core.NIL,
		FirstArc:               core.NIL,
		LastArc:                core.NIL,
		ExtFace:                [2]int{core.NIL, core.NIL},
	}
}

// DefaultMergeBicomps drains g.Stack, merging at each (R, Rout, Z, ZPrevLink)
// frame the bicomp rooted at R into cut vertex Z, flipping R's orientation
// first when the path used to enter Z opposes the path used to exit R. It
// never fails for the core algorithm, so it always returns ok=true.
func DefaultMergeBicomps(g *core.Graph, i, rootVertex, w, wPrevLink int) (bool, error) {
	for g.Stack.NonEmpty() {
		r, rout := g.Stack.Pop2()
		z, zPrevLink := g.Stack.Pop2()

		extFaceVertex := g.V(r).ExtFace[1^rout]
		g.V(z).ExtFace[zPrevLink] = extFaceVertex

		ev := g.V(extFaceVertex)
		if ev.ExtFace[0] == ev.ExtFace[1] {
			link := rout
			if ev.ExtFaceInversionFlag {
				link = 1 ^ rout
			}
			ev.ExtFace[link] = z
		} else {
			link := 1
			if ev.ExtFace[0] == r {
				link = 0
			}
			ev.ExtFace[link] = z
		}

		if zPrevLink == rout {
			rout = 1 ^ zPrevLink

			if g.V(r).FirstArc != g.V(r).LastArc {
				InvertVertex(g, r)
			}

			j := g.V(r).FirstArc
			for g.IsArc(j) {
				if g.A(j).Type == core.EdgeTypeTreeChild {
					g.A(j).Inverted = !g.A(j).Inverted
					break
				}
				j = g.A(j).Next
			}
		}

		rootIDChild := r - g.N

		z2 := g.V(z)
		z2.PertinentBicompList = g.Bicomps.Delete(z2.PertinentBicompList, rootIDChild)
		z2.SeparatedDFSChildList = g.SeparatedDFS.Delete(z2.SeparatedDFSChildList, rootIDChild)

		MergeVertex(g, z, zPrevLink, r)
	}
	return true, nil
}
