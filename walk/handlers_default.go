package walk

import "github.com/katalvlaran/planarity/core"

// DefaultHandlers implements Handlers using the core algorithm's
// unmodified behavior: DefaultMergeBicomps, DefaultEmbedBackEdgeToDescendant,
// DefaultHandleBlockedDescendantBicomp and DefaultHandleInactiveVertex. The
// hooks package's Planar mode is built on this directly; other modes embed
// it and override selected methods.
type DefaultHandlers struct{}

func (DefaultHandlers) MergeBicomps(g *core.Graph, i, rootVertex, w, wPrevLink int) (bool, error) {
	return DefaultMergeBicomps(g, i, rootVertex, w, wPrevLink)
}

func (DefaultHandlers) EmbedBackEdgeToDescendant(g *core.Graph, rootSide, rootVertex, w, wPrevLink int) error {
	return DefaultEmbedBackEdgeToDescendant(g, rootSide, rootVertex, w, wPrevLink)
}

func (DefaultHandlers) HandleBlockedDescendantBicomp(g *core.Graph, i, rootVertex, r int) (rout, w, wPrevLink int, cleared bool, err error) {
	return DefaultHandleBlockedDescendantBicomp(g, i, rootVertex, r)
}

func (DefaultHandlers) HandleInactiveVertex(g *core.Graph, bicompRoot, w, wPrevLink int) (int, int, error) {
	return DefaultHandleInactiveVertex(g, bicompRoot, w, wPrevLink)
}

// DefaultHandleBlockedDescendantBicomp implements the core algorithm's
// response to a blocked pertinent child bicomp: push the blocked root onto
// g.Stack (the central evidence for obstruction minor A) and report
// cleared=false so Walkdown terminates with a NONEMBEDDABLE result.
func DefaultHandleBlockedDescendantBicomp(g *core.Graph, i, rootVertex, r int) (rout, w, wPrevLink int, cleared bool, err error) {
	g.Stack.Push2(r, 0)
	return 0, 0, 0, false, nil
}

// DefaultHandleInactiveVertex advances past the inactive vertex w by one
// step along the external face.
func DefaultHandleInactiveVertex(g *core.Graph, bicompRoot, w, wPrevLink int) (int, int, error) {
	x := g.V(w).ExtFace[1^wPrevLink]
	nextPrevLink := 1
	if g.V(x).ExtFace[0] == w {
		nextPrevLink = 0
	}
	return x, nextPrevLink, nil
}
